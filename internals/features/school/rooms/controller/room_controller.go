package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	groupService "edumanage_backend/internals/features/school/groups/service"
	"edumanage_backend/internals/features/school/rooms/dto"
	"edumanage_backend/internals/features/school/rooms/model"
	"edumanage_backend/internals/features/school/rooms/service"
	helper "edumanage_backend/internals/helpers"
	"edumanage_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

/* ========================= CRUD ========================= */

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", req.RoomBranchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}
	if b.BranchStatus != branchModel.BranchActive {
		return helper.JsonError(c, http.StatusBadRequest, "branch is not active")
	}

	var dup int64
	if err := ctl.DB.Model(&model.RoomModel{}).
		Where("room_branch_id = ? AND room_name = ?", req.RoomBranchID, req.RoomName).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonError(c, http.StatusConflict, "room name already exists in this branch")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "room created", m)
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid room id")
	}
	var m model.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	var q dto.ListRoomsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.RoomModel{})
	if q.BranchID != "" {
		db = db.Where("room_branch_id = ?", q.BranchID)
	}
	if q.Search != "" {
		db = db.Where("room_name ILIKE ?", "%"+q.Search+"%")
	}
	if q.MinCapacity > 0 {
		db = db.Where("room_capacity >= ?", q.MinCapacity)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.RoomModel
	if err := db.Order("room_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid room id")
	}

	var req dto.PatchRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	if req.RoomName != nil && *req.RoomName != m.RoomName {
		var dup int64
		if err := ctl.DB.Model(&model.RoomModel{}).
			Where("room_branch_id = ? AND room_name = ? AND room_id <> ?", m.RoomBranchID, *req.RoomName, id).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "room name already exists in this branch")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "room updated", m)
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid room id")
	}

	var m model.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	var active int64
	if err := ctl.DB.Model(&groupModel.GroupModel{}).
		Where("group_room_id = ? AND group_status IN ?", id, []groupModel.GroupStatus{groupModel.GroupPlanned, groupModel.GroupOngoing}).
		Count(&active).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if active > 0 {
		return helper.JsonError(c, http.StatusConflict, "room still has planned or ongoing groups")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "room deleted", fiber.Map{"room_id": id})
}

/* ========================= Check-availability ========================= */

// CheckAvailability reports whether a room is free for the requested days
// and start time and, if not, offers the open business-hour slots per day.
func (ctl *RoomController) CheckAvailability(c *fiber.Ctx) error {
	var req dto.CheckAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	tod, err := dbtime.Parse(req.StartTime)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "start_time: expected HH:mm[:ss]")
	}

	var room model.RoomModel
	if err := ctl.DB.Where("room_id = ?", req.RoomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	// groups occupying the exact requested slot
	activeStatuses := []groupModel.GroupStatus{groupModel.GroupPlanned, groupModel.GroupOngoing}
	slotQuery := ctl.DB.Model(&groupModel.GroupModel{}).
		Where("group_room_id = ?", req.RoomID).
		Where("group_status IN ?", activeStatuses).
		Where("group_days && ?", pq.Array(req.Days)).
		Where("group_start_time = ?", tod.String()).
		Order("group_created_at ASC")
	if req.ExcludeGroupID != nil {
		slotQuery = slotQuery.Where("group_id <> ?", *req.ExcludeGroupID)
	}

	var blocking []groupModel.GroupModel
	if err := slotQuery.Find(&blocking).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	resp := fiber.Map{
		"room_id":            room.RoomID,
		"room_name":          room.RoomName,
		"is_available":       len(blocking) == 0,
		"conflicting_groups": groupService.BuildConflictRecords(groupService.RoomConflict, req.Days, blocking),
	}

	if len(blocking) > 0 {
		// best-effort alternatives: every open (day, slot) pair
		dayQuery := ctl.DB.Model(&groupModel.GroupModel{}).
			Where("group_room_id = ?", req.RoomID).
			Where("group_status IN ?", activeStatuses).
			Where("group_days && ?", pq.Array(req.Days))
		if req.ExcludeGroupID != nil {
			dayQuery = dayQuery.Where("group_id <> ?", *req.ExcludeGroupID)
		}
		var sameDays []groupModel.GroupModel
		if err := dayQuery.Find(&sameDays).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		resp["available_time_slots"] = service.OpenSlots(req.Days, service.BuildOccupied(sameDays))
	}

	return helper.JsonOK(c, "", resp)
}
