package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	"edumanage_backend/internals/features/school/students/dto"
	"edumanage_backend/internals/features/school/students/model"
	helper "edumanage_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", req.StudentBranchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}
	if b.BranchStatus != branchModel.BranchActive {
		return helper.JsonError(c, http.StatusBadRequest, "branch is not active")
	}

	if req.StudentEmail != nil && *req.StudentEmail != "" {
		var dup int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_email = ?", *req.StudentEmail).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "student email already registered")
		}
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "student created", m)
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	var m model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.StudentModel{})
	if q.BranchID != "" {
		db = db.Where("student_branch_id = ?", q.BranchID)
	}
	if q.Search != "" {
		db = db.Where("student_fullname ILIKE ? OR student_email ILIKE ?",
			"%"+q.Search+"%", "%"+q.Search+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.StudentModel
	if err := db.Order("student_fullname ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	var req dto.PatchStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.WritePGError(c, err)
	}

	if req.StudentEmail != nil && *req.StudentEmail != "" {
		var dup int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_email = ? AND student_id <> ?", *req.StudentEmail, id).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "student email already registered")
		}
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "student updated", m)
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	var m model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.WritePGError(c, err)
	}

	var enrolled int64
	if err := ctl.DB.Model(&groupModel.StudentGroupModel{}).
		Where("student_group_student_id = ?", id).
		Count(&enrolled).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if enrolled > 0 {
		return helper.JsonError(c, http.StatusConflict, "student still has enrollments")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
