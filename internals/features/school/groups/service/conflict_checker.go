package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/groups/model"
	helper "edumanage_backend/internals/helpers"
	"edumanage_backend/internals/helpers/dbtime"
)

/* =======================================================
   Conflict types & records
   ======================================================= */

type ConflictType string

const (
	TeacherConflict ConflictType = "TEACHER_CONFLICT"
	RoomConflict    ConflictType = "ROOM_CONFLICT"
)

type ConflictRecord struct {
	ConflictType         ConflictType `json:"conflict_type"`
	ConflictingGroupID   uuid.UUID    `json:"conflicting_group_id"`
	ConflictingGroupName string       `json:"conflicting_group_name"`
	ConflictDays         []string     `json:"conflict_days"`
	ConflictTime         string       `json:"conflict_time"`
}

// ScheduleConflictError carries the full conflict list up to the caller so
// no entry is dropped on the way to the response body.
type ScheduleConflictError struct {
	Conflicts []ConflictRecord
}

func (e *ScheduleConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("schedule conflict: %d overlapping assignment(s)", len(e.Conflicts))
}

/* =======================================================
   Candidate & checker
   ======================================================= */

// Candidate is a proposed {teacher, room, days, start_time} assignment.
// ExcludeGroupID must be set when validating an update so a group does not
// conflict with itself.
type Candidate struct {
	TeacherID      *uuid.UUID
	RoomID         *uuid.UUID
	Days           []string
	StartTime      *dbtime.Tod
	ExcludeGroupID *uuid.UUID
}

// CheckScheduleConflicts reports every existing group that double-books the
// candidate's teacher or room: same resource, at least one shared weekday
// (array overlap) and the exact same start time. Teacher conflicts come
// first, then room conflicts, each in query order.
//
// A candidate without days or start time has nothing to compare against and
// short-circuits to no conflicts. The same goes per dimension for an unset
// teacher or room.
func CheckScheduleConflicts(db *gorm.DB, cand Candidate) ([]ConflictRecord, error) {
	if len(cand.Days) == 0 || cand.StartTime == nil {
		return nil, nil
	}

	var all []ConflictRecord

	if cand.TeacherID != nil {
		rows, err := findOverlapping(db, "group_teacher_id", *cand.TeacherID, cand)
		if err != nil {
			return nil, err
		}
		all = append(all, BuildConflictRecords(TeacherConflict, cand.Days, rows)...)
	}

	if cand.RoomID != nil {
		rows, err := findOverlapping(db, "group_room_id", *cand.RoomID, cand)
		if err != nil {
			return nil, err
		}
		all = append(all, BuildConflictRecords(RoomConflict, cand.Days, rows)...)
	}

	return all, nil
}

func findOverlapping(db *gorm.DB, column string, resourceID uuid.UUID, cand Candidate) ([]model.GroupModel, error) {
	q := db.Model(&model.GroupModel{}).
		Where(column+" = ?", resourceID).
		Where("group_start_time = ?", cand.StartTime.String()).
		Where("group_days && ?", pq.Array(cand.Days)).
		Order("group_created_at ASC")

	if cand.ExcludeGroupID != nil {
		q = q.Where("group_id <> ?", *cand.ExcludeGroupID)
	}

	var rows []model.GroupModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// BuildConflictRecords turns matched groups into conflict records. The day
// intersection is reported in canonical MON→SUN order.
func BuildConflictRecords(ct ConflictType, candidateDays []string, rows []model.GroupModel) []ConflictRecord {
	out := make([]ConflictRecord, 0, len(rows))
	for _, g := range rows {
		shared := helper.IntersectWeekdays(candidateDays, g.GroupDays)
		if len(shared) == 0 {
			// defensive: the && filter already guarantees a shared day
			continue
		}
		rec := ConflictRecord{
			ConflictType:         ct,
			ConflictingGroupID:   g.GroupID,
			ConflictingGroupName: g.GroupName,
			ConflictDays:         shared,
		}
		if g.GroupStartTime != nil {
			rec.ConflictTime = g.GroupStartTime.String()
		}
		out = append(out, rec)
	}
	return out
}
