package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status
   ======================================================= */

type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "ACTIVE"
	TeacherInactive TeacherStatus = "INACTIVE"
)

/* =======================================================
   TeacherModel
   ======================================================= */

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherBranchID uuid.UUID `json:"teacher_branch_id" gorm:"type:uuid;not null;index;column:teacher_branch_id"`

	TeacherFullname string  `json:"teacher_fullname" gorm:"type:varchar(150);not null;column:teacher_fullname"`
	TeacherPhone    *string `json:"teacher_phone,omitempty" gorm:"type:varchar(30);column:teacher_phone"`
	TeacherEmail    *string `json:"teacher_email,omitempty" gorm:"type:varchar(150);column:teacher_email"`

	// free-form contact extras (telegram, emergency contact, ...)
	TeacherContact datatypes.JSON `json:"teacher_contact,omitempty" gorm:"column:teacher_contact"`

	TeacherStatus TeacherStatus `json:"teacher_status" gorm:"type:text;not null;default:'ACTIVE';column:teacher_status"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
