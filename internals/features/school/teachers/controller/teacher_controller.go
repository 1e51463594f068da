package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	"edumanage_backend/internals/features/school/teachers/dto"
	"edumanage_backend/internals/features/school/teachers/model"
	helper "edumanage_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", req.TeacherBranchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}
	if b.BranchStatus != branchModel.BranchActive {
		return helper.JsonError(c, http.StatusBadRequest, "branch is not active")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "teacher created", m)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}
	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var q dto.ListTeachersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.TeacherModel{})
	if q.BranchID != "" {
		db = db.Where("teacher_branch_id = ?", q.BranchID)
	}
	if q.Status != "" {
		db = db.Where("teacher_status = ?", q.Status)
	}
	if q.Search != "" {
		db = db.Where("teacher_fullname ILIKE ?", "%"+q.Search+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.TeacherModel
	if err := db.Order("teacher_fullname ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}

	var req dto.PatchTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return helper.WritePGError(c, err)
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "teacher updated", m)
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return helper.WritePGError(c, err)
	}

	var used int64
	if err := ctl.DB.Model(&groupModel.GroupModel{}).
		Where("group_teacher_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if used > 0 {
		return helper.JsonError(c, http.StatusConflict, "teacher still has groups")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "teacher deleted", fiber.Map{"teacher_id": id})
}
