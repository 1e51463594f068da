package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	"edumanage_backend/internals/features/school/courses/dto"
	"edumanage_backend/internals/features/school/courses/model"
	helper "edumanage_backend/internals/helpers"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB, v *validator.Validate) *CategoryController {
	return &CategoryController{DB: db, Validate: v}
}

func (ctl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", req.CategoryBranchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.CategoryModel{}).
		Where("category_branch_id = ? AND category_name = ?", req.CategoryBranchID, req.CategoryName).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonError(c, http.StatusConflict, "category name already exists in this branch")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "category created", m)
}

func (ctl *CategoryController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.CategoryModel{})
	if branchID := strings.TrimSpace(c.Query("branch_id")); branchID != "" {
		db = db.Where("category_branch_id = ?", branchID)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.CategoryModel
	if err := db.Order("category_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *CategoryController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid category id")
	}

	var req dto.PatchCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.CategoryModel
	if err := ctl.DB.Where("category_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "category not found")
		}
		return helper.WritePGError(c, err)
	}

	if req.CategoryName != nil {
		name := strings.TrimSpace(*req.CategoryName)
		var dup int64
		if err := ctl.DB.Model(&model.CategoryModel{}).
			Where("category_branch_id = ? AND category_name = ? AND category_id <> ?", m.CategoryBranchID, name, id).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "category name already exists in this branch")
		}
		m.CategoryName = name
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "category updated", m)
}

func (ctl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid category id")
	}

	var m model.CategoryModel
	if err := ctl.DB.Where("category_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "category not found")
		}
		return helper.WritePGError(c, err)
	}

	var used int64
	if err := ctl.DB.Model(&model.CourseModel{}).
		Where("course_category_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if used > 0 {
		return helper.JsonError(c, http.StatusConflict, "category still has courses")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "category deleted", fiber.Map{"category_id": id})
}
