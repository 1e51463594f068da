package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"edumanage_backend/internals/features/school/groups/model"
	helper "edumanage_backend/internals/helpers"
	"edumanage_backend/internals/helpers/dbtime"
)

/* =======================================================
   REQUEST DTOs (CREATE / PATCH)
   ======================================================= */

type CreateGroupRequest struct {
	GroupName     string     `json:"group_name" validate:"required,min=2,max=150"`
	GroupBranchID uuid.UUID  `json:"group_branch_id" validate:"required"`
	GroupCourseID uuid.UUID  `json:"group_course_id" validate:"required"`
	GroupTeacherID *uuid.UUID `json:"group_teacher_id,omitempty"`
	GroupRoomID    *uuid.UUID `json:"group_room_id,omitempty"`

	GroupStatus *string  `json:"group_status,omitempty" validate:"omitempty,oneof=PLANNED ONGOING COMPLETED"`
	GroupDays   []string `json:"group_days" validate:"required,min=1,dive,oneof=MON TUE WED THU FRI SAT SUN"`

	GroupStartTime *string `json:"group_start_time,omitempty"`
	GroupStartDate *string `json:"group_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GroupEndDate   *string `json:"group_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
	for i, d := range r.GroupDays {
		r.GroupDays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
}

func (r CreateGroupRequest) ToModel() (model.GroupModel, error) {
	m := model.GroupModel{
		GroupName:      r.GroupName,
		GroupBranchID:  r.GroupBranchID,
		GroupCourseID:  r.GroupCourseID,
		GroupTeacherID: r.GroupTeacherID,
		GroupRoomID:    r.GroupRoomID,
		GroupStatus:    model.GroupPlanned,
		GroupDays:      helper.NormalizeWeekdays(r.GroupDays),
	}
	if r.GroupStatus != nil {
		m.GroupStatus = model.GroupStatus(*r.GroupStatus)
	}

	if r.GroupStartTime != nil {
		tod, err := dbtime.Parse(*r.GroupStartTime)
		if err != nil {
			return m, fmt.Errorf("group_start_time: expected HH:mm[:ss]")
		}
		m.GroupStartTime = &tod
	}

	var err error
	if m.GroupStartDate, err = parseDatePtr(r.GroupStartDate); err != nil {
		return m, err
	}
	if m.GroupEndDate, err = parseDatePtr(r.GroupEndDate); err != nil {
		return m, err
	}
	if err := validateDateRange(m.GroupStartDate, m.GroupEndDate); err != nil {
		return m, err
	}
	return m, nil
}

// PatchGroupRequest merges over the existing group; absent fields stay
// unchanged. Branch ownership is immutable.
type PatchGroupRequest struct {
	GroupName      *string    `json:"group_name,omitempty" validate:"omitempty,min=2,max=150"`
	GroupCourseID  *uuid.UUID `json:"group_course_id,omitempty"`
	GroupTeacherID *uuid.UUID `json:"group_teacher_id,omitempty"`
	GroupRoomID    *uuid.UUID `json:"group_room_id,omitempty"`

	GroupStatus *string  `json:"group_status,omitempty" validate:"omitempty,oneof=PLANNED ONGOING COMPLETED"`
	GroupDays   []string `json:"group_days,omitempty" validate:"omitempty,min=1,dive,oneof=MON TUE WED THU FRI SAT SUN"`

	GroupStartTime *string `json:"group_start_time,omitempty"`
	GroupStartDate *string `json:"group_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GroupEndDate   *string `json:"group_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *PatchGroupRequest) Normalize() {
	if r.GroupName != nil {
		v := strings.TrimSpace(*r.GroupName)
		r.GroupName = &v
	}
	for i, d := range r.GroupDays {
		r.GroupDays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
}

// PatchChanges flags which dependency validations have to re-run.
type PatchChanges struct {
	Course   bool
	Teacher  bool
	Room     bool
	Schedule bool // teacher, room, days or start_time touched
}

// Apply merges the patch into m and reports what changed.
func (r PatchGroupRequest) Apply(m *model.GroupModel) (PatchChanges, error) {
	var ch PatchChanges

	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.GroupStatus != nil {
		m.GroupStatus = model.GroupStatus(*r.GroupStatus)
	}
	if r.GroupCourseID != nil {
		m.GroupCourseID = *r.GroupCourseID
		ch.Course = true
	}
	if r.GroupTeacherID != nil {
		m.GroupTeacherID = r.GroupTeacherID
		ch.Teacher = true
		ch.Schedule = true
	}
	if r.GroupRoomID != nil {
		m.GroupRoomID = r.GroupRoomID
		ch.Room = true
		ch.Schedule = true
	}
	if len(r.GroupDays) > 0 {
		m.GroupDays = helper.NormalizeWeekdays(r.GroupDays)
		ch.Schedule = true
	}
	if r.GroupStartTime != nil {
		tod, err := dbtime.Parse(*r.GroupStartTime)
		if err != nil {
			return ch, fmt.Errorf("group_start_time: expected HH:mm[:ss]")
		}
		m.GroupStartTime = &tod
		ch.Schedule = true
	}

	if r.GroupStartDate != nil {
		d, err := parseDatePtr(r.GroupStartDate)
		if err != nil {
			return ch, err
		}
		m.GroupStartDate = d
	}
	if r.GroupEndDate != nil {
		d, err := parseDatePtr(r.GroupEndDate)
		if err != nil {
			return ch, err
		}
		m.GroupEndDate = d
	}
	if err := validateDateRange(m.GroupStartDate, m.GroupEndDate); err != nil {
		return ch, err
	}
	return ch, nil
}

/* =======================================================
   LIST QUERY - explicit typed filter, one optional field
   per dimension
   ======================================================= */

type ListGroupsQuery struct {
	BranchID  string   `query:"branch_id"`
	CourseID  string   `query:"course_id"`
	TeacherID string   `query:"teacher_id"`
	RoomID    string   `query:"room_id"`
	Status    string   `query:"status"`
	Days      []string `query:"days"`
	Search    string   `query:"search"`

	StartDateFrom string `query:"start_date_from"`
	StartDateTo   string `query:"start_date_to"`
	EndDateFrom   string `query:"end_date_from"`
	EndDateTo     string `query:"end_date_to"`
	TimeFrom      string `query:"time_from"`
	TimeTo        string `query:"time_to"`
}

func (q *ListGroupsQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
	q.Days = helper.NormalizeWeekdays(q.Days)
}

/* =======================================================
   CHECK-CONFLICTS (dry-run)
   ======================================================= */

type CheckConflictsRequest struct {
	GroupTeacherID *uuid.UUID `json:"group_teacher_id,omitempty"`
	GroupRoomID    *uuid.UUID `json:"group_room_id,omitempty"`
	GroupDays      []string   `json:"group_days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	GroupStartTime *string    `json:"group_start_time,omitempty"`
	ExcludeGroupID *uuid.UUID `json:"exclude_group_id,omitempty"`
}

func (r *CheckConflictsRequest) Normalize() {
	for i, d := range r.GroupDays {
		r.GroupDays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
}

/* =======================================================
   ENROLLMENT
   ======================================================= */

type EnrollStudentRequest struct {
	StudentGroupGroupID   uuid.UUID `json:"student_group_group_id" validate:"required"`
	StudentGroupStudentID uuid.UUID `json:"student_group_student_id" validate:"required"`
	StudentGroupBranchID  uuid.UUID `json:"student_group_branch_id" validate:"required"`
}

type UnenrollStudentRequest struct {
	StudentGroupGroupID   uuid.UUID `json:"student_group_group_id" validate:"required"`
	StudentGroupStudentID uuid.UUID `json:"student_group_student_id" validate:"required"`
}

/* =======================================================
   shared parsing
   ======================================================= */

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", *s)
	}
	return &d, nil
}

func validateDateRange(start, end *time.Time) error {
	if end != nil && start == nil {
		return fmt.Errorf("group_end_date requires group_start_date")
	}
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("group_end_date must not be before group_start_date")
	}
	return nil
}
