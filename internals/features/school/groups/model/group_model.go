package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edumanage_backend/internals/helpers/dbtime"
)

/* =======================================================
   Enum status
   ======================================================= */

type GroupStatus string

const (
	GroupPlanned   GroupStatus = "PLANNED"
	GroupOngoing   GroupStatus = "ONGOING"
	GroupCompleted GroupStatus = "COMPLETED"
)

/* =======================================================
   GroupModel - a scheduled recurring class instance:
   course + optional teacher/room + weekly day/time pattern.

   group_days is a text[] of weekday tokens (MON..SUN); the
   && array-overlap operator gives the hasSome semantics the
   conflict checker and list filter rely on.
   ======================================================= */

type GroupModel struct {
	GroupID uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey;column:group_id;default:gen_random_uuid()"`

	GroupBranchID uuid.UUID `json:"group_branch_id" gorm:"type:uuid;not null;index;column:group_branch_id;uniqueIndex:uq_groups_branch_name"`
	GroupCourseID uuid.UUID `json:"group_course_id" gorm:"type:uuid;not null;index;column:group_course_id"`

	// nullable resources; an unset resource is never conflict-checked
	GroupTeacherID *uuid.UUID `json:"group_teacher_id,omitempty" gorm:"type:uuid;index;column:group_teacher_id"`
	GroupRoomID    *uuid.UUID `json:"group_room_id,omitempty" gorm:"type:uuid;index;column:group_room_id"`

	GroupName   string      `json:"group_name" gorm:"type:varchar(150);not null;column:group_name;uniqueIndex:uq_groups_branch_name"`
	GroupStatus GroupStatus `json:"group_status" gorm:"type:text;not null;default:'PLANNED';column:group_status"`

	GroupDays      pq.StringArray `json:"group_days" gorm:"type:text[];not null;column:group_days"`
	GroupStartTime *dbtime.Tod    `json:"group_start_time,omitempty" gorm:"type:time;column:group_start_time"`

	// end_date only meaningful when start_date is present; end >= start
	GroupStartDate *time.Time `json:"group_start_date,omitempty" gorm:"type:date;column:group_start_date"`
	GroupEndDate   *time.Time `json:"group_end_date,omitempty" gorm:"type:date;column:group_end_date"`

	GroupCreatedAt time.Time      `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt time.Time      `json:"group_updated_at" gorm:"column:group_updated_at;not null;autoUpdateTime"`
	GroupDeletedAt gorm.DeletedAt `json:"group_deleted_at,omitempty" gorm:"column:group_deleted_at;index"`
}

func (GroupModel) TableName() string {
	return "groups"
}
