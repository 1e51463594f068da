package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   StudentModel
   ======================================================= */

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	StudentBranchID uuid.UUID `json:"student_branch_id" gorm:"type:uuid;not null;index;column:student_branch_id"`

	StudentFullname string     `json:"student_fullname" gorm:"type:varchar(150);not null;column:student_fullname"`
	StudentEmail    *string    `json:"student_email,omitempty" gorm:"type:varchar(150);uniqueIndex;column:student_email"`
	StudentPhone    *string    `json:"student_phone,omitempty" gorm:"type:varchar(30);column:student_phone"`
	StudentBirthday *time.Time `json:"student_birthday,omitempty" gorm:"type:date;column:student_birthday"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
