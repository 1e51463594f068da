package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status
   ======================================================= */

type BranchStatus string

const (
	BranchActive   BranchStatus = "ACTIVE"
	BranchInactive BranchStatus = "INACTIVE"
)

/* =======================================================
   BranchModel - root of the ownership hierarchy. Rooms,
   teachers, students, courses and groups all carry a
   branch_id and must belong to an ACTIVE branch to take
   part in new assignments.
   ======================================================= */

type BranchModel struct {
	BranchID uuid.UUID `json:"branch_id" gorm:"type:uuid;primaryKey;column:branch_id;default:gen_random_uuid()"`

	BranchName    string       `json:"branch_name" gorm:"type:varchar(100);not null;uniqueIndex;column:branch_name"`
	BranchAddress *string      `json:"branch_address,omitempty" gorm:"type:text;column:branch_address"`
	BranchPhone   *string      `json:"branch_phone,omitempty" gorm:"type:varchar(30);column:branch_phone"`
	BranchStatus  BranchStatus `json:"branch_status" gorm:"type:text;not null;default:'ACTIVE';column:branch_status"`

	BranchCreatedAt time.Time      `json:"branch_created_at" gorm:"column:branch_created_at;not null;autoCreateTime"`
	BranchUpdatedAt time.Time      `json:"branch_updated_at" gorm:"column:branch_updated_at;not null;autoUpdateTime"`
	BranchDeletedAt gorm.DeletedAt `json:"branch_deleted_at,omitempty" gorm:"column:branch_deleted_at;index"`
}

func (BranchModel) TableName() string {
	return "branches"
}
