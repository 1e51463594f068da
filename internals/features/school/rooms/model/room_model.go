package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   RoomModel - owned exclusively by its branch. Name is
   unique within a branch (composite unique index).
   ======================================================= */

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomBranchID uuid.UUID `json:"room_branch_id" gorm:"type:uuid;not null;column:room_branch_id;uniqueIndex:uq_rooms_branch_name"`
	RoomName     string    `json:"room_name" gorm:"type:varchar(100);not null;column:room_name;uniqueIndex:uq_rooms_branch_name"`

	// capacity 1..1000, enforced at the DTO layer
	RoomCapacity    int            `json:"room_capacity" gorm:"type:int;not null;column:room_capacity"`
	RoomDescription *string        `json:"room_description,omitempty" gorm:"type:text;column:room_description"`
	RoomFacilities  datatypes.JSON `json:"room_facilities,omitempty" gorm:"column:room_facilities"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at,omitempty" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
