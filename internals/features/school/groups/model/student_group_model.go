package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   StudentGroupModel - enrollment join row, unique on
   (group_id, student_id).
   ======================================================= */

type StudentGroupModel struct {
	StudentGroupID uuid.UUID `json:"student_group_id" gorm:"type:uuid;primaryKey;column:student_group_id;default:gen_random_uuid()"`

	StudentGroupGroupID   uuid.UUID `json:"student_group_group_id" gorm:"type:uuid;not null;column:student_group_group_id;uniqueIndex:uq_student_groups_pair"`
	StudentGroupStudentID uuid.UUID `json:"student_group_student_id" gorm:"type:uuid;not null;column:student_group_student_id;uniqueIndex:uq_student_groups_pair"`
	StudentGroupBranchID  uuid.UUID `json:"student_group_branch_id" gorm:"type:uuid;not null;index;column:student_group_branch_id"`

	StudentGroupCreatedAt time.Time      `json:"student_group_created_at" gorm:"column:student_group_created_at;not null;autoCreateTime"`
	StudentGroupDeletedAt gorm.DeletedAt `json:"student_group_deleted_at,omitempty" gorm:"column:student_group_deleted_at;index"`
}

func (StudentGroupModel) TableName() string {
	return "student_groups"
}
