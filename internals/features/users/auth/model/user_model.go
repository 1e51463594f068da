package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`

	UserFullName string `json:"user_full_name" gorm:"type:varchar(150);not null;column:user_full_name"`
	UserEmail    string `json:"user_email" gorm:"type:varchar(150);not null;uniqueIndex;column:user_email"`

	// bcrypt hash, never serialized
	UserPassword string `json:"-" gorm:"type:varchar(100);not null;column:user_password"`

	// ADMIN | MANAGER | TEACHER | STUDENT
	UserRole     string  `json:"user_role" gorm:"type:text;not null;default:'MANAGER';column:user_role"`
	UserGoogleID *string `json:"-" gorm:"type:varchar(64);index;column:user_google_id"`
	UserIsActive bool    `json:"user_is_active" gorm:"type:boolean;not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}
