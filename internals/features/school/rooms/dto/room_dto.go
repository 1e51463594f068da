package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"edumanage_backend/internals/features/school/rooms/model"
	helper "edumanage_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateRoomRequest struct {
	RoomBranchID    uuid.UUID      `json:"room_branch_id" validate:"required"`
	RoomName        string         `json:"room_name" validate:"required,min=1,max=100"`
	RoomCapacity    int            `json:"room_capacity" validate:"required,min=1,max=1000"`
	RoomDescription *string        `json:"room_description,omitempty" validate:"omitempty,max=1000"`
	RoomFacilities  datatypes.JSON `json:"room_facilities,omitempty"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
}

func (r CreateRoomRequest) ToModel() model.RoomModel {
	return model.RoomModel{
		RoomBranchID:    r.RoomBranchID,
		RoomName:        r.RoomName,
		RoomCapacity:    r.RoomCapacity,
		RoomDescription: r.RoomDescription,
		RoomFacilities:  r.RoomFacilities,
	}
}

type PatchRoomRequest struct {
	RoomName        *string        `json:"room_name,omitempty" validate:"omitempty,min=1,max=100"`
	RoomCapacity    *int           `json:"room_capacity,omitempty" validate:"omitempty,min=1,max=1000"`
	RoomDescription *string        `json:"room_description,omitempty" validate:"omitempty,max=1000"`
	RoomFacilities  datatypes.JSON `json:"room_facilities,omitempty"`
}

func (r PatchRoomRequest) Apply(m *model.RoomModel) {
	if r.RoomName != nil {
		m.RoomName = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomCapacity != nil {
		m.RoomCapacity = *r.RoomCapacity
	}
	if r.RoomDescription != nil {
		m.RoomDescription = r.RoomDescription
	}
	if len(r.RoomFacilities) > 0 {
		m.RoomFacilities = r.RoomFacilities
	}
}

/* =======================================================
   LIST QUERY
   ======================================================= */

type ListRoomsQuery struct {
	BranchID    string `query:"branch_id"`
	Search      string `query:"search"`
	MinCapacity int    `query:"min_capacity"`
}

func (q *ListRoomsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
}

/* =======================================================
   CHECK-AVAILABILITY
   ======================================================= */

type CheckAvailabilityRequest struct {
	RoomID         uuid.UUID  `json:"room_id" validate:"required"`
	Days           []string   `json:"days" validate:"required,min=1,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime      string     `json:"start_time" validate:"required"`
	ExcludeGroupID *uuid.UUID `json:"exclude_group_id,omitempty"`
}

func (r *CheckAvailabilityRequest) Normalize() {
	for i, d := range r.Days {
		r.Days[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	r.Days = helper.NormalizeWeekdays(r.Days)
	r.StartTime = strings.TrimSpace(r.StartTime)
}
