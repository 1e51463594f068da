package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	"edumanage_backend/internals/features/school/courses/dto"
	"edumanage_backend/internals/features/school/courses/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	helper "edumanage_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

// categoryInBranch verifies the category exists and is owned by branchID.
func (ctl *CourseController) categoryInBranch(categoryID, branchID uuid.UUID) error {
	var cat model.CategoryModel
	if err := ctl.DB.Where("category_id = ?", categoryID).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "category not found")
		}
		return err
	}
	if cat.CategoryBranchID != branchID {
		return fiber.NewError(http.StatusBadRequest, "category belongs to a different branch")
	}
	return nil
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", req.CourseBranchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}
	if b.BranchStatus != branchModel.BranchActive {
		return helper.JsonError(c, http.StatusBadRequest, "branch is not active")
	}

	if err := ctl.categoryInBranch(req.CourseCategoryID, req.CourseBranchID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "course created", m)
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid course id")
	}
	var m model.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	var q dto.ListCoursesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.CourseModel{})
	if q.BranchID != "" {
		db = db.Where("course_branch_id = ?", q.BranchID)
	}
	if q.CategoryID != "" {
		db = db.Where("course_category_id = ?", q.CategoryID)
	}
	if q.Status != "" {
		db = db.Where("course_status = ?", q.Status)
	}
	if q.Search != "" {
		db = db.Where("course_name ILIKE ?", "%"+q.Search+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.CourseModel
	if err := db.Order("course_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid course id")
	}

	var req dto.PatchCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return helper.WritePGError(c, err)
	}

	if categoryChanged := req.Apply(&m); categoryChanged {
		if err := ctl.categoryInBranch(m.CourseCategoryID, m.CourseBranchID); err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.WritePGError(c, err)
		}
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "course updated", m)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid course id")
	}

	var m model.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return helper.WritePGError(c, err)
	}

	var used int64
	if err := ctl.DB.Model(&groupModel.GroupModel{}).
		Where("group_course_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if used > 0 {
		return helper.JsonError(c, http.StatusConflict, "course still has groups")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": id})
}
