package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status
   ======================================================= */

type CourseStatus string

const (
	CourseActive   CourseStatus = "ACTIVE"
	CourseDraft    CourseStatus = "DRAFT"
	CourseArchived CourseStatus = "ARCHIVED"
)

/* =======================================================
   CourseModel - category must belong to the same branch.
   ======================================================= */

type CourseModel struct {
	CourseID uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`

	CourseBranchID   uuid.UUID `json:"course_branch_id" gorm:"type:uuid;not null;column:course_branch_id"`
	CourseCategoryID uuid.UUID `json:"course_category_id" gorm:"type:uuid;not null;column:course_category_id"`

	CourseName   string       `json:"course_name" gorm:"type:varchar(150);not null;column:course_name"`
	CourseStatus CourseStatus `json:"course_status" gorm:"type:text;not null;default:'DRAFT';column:course_status"`

	CoursePrice          float64 `json:"course_price" gorm:"type:numeric(12,2);not null;default:0;column:course_price"`
	CourseDurationHours  int     `json:"course_duration_hours" gorm:"type:int;not null;default:0;column:course_duration_hours"`
	CourseDurationMonths int     `json:"course_duration_months" gorm:"type:int;not null;default:0;column:course_duration_months"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string {
	return "courses"
}
