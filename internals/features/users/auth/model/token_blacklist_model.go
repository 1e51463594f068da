package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel holds revoked access tokens until they expire; the
// cleanup scheduler prunes rows past their TTL.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"type:uuid;primaryKey;column:token_blacklist_id;default:gen_random_uuid()"`

	Token     string    `json:"token" gorm:"type:text;not null;index;column:token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at;not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
