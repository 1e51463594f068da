package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/branches/dto"
	"edumanage_backend/internals/features/school/branches/model"
	courseModel "edumanage_backend/internals/features/school/courses/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	roomModel "edumanage_backend/internals/features/school/rooms/model"
	studentModel "edumanage_backend/internals/features/school/students/model"
	teacherModel "edumanage_backend/internals/features/school/teachers/model"
	helper "edumanage_backend/internals/helpers"
)

type BranchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BranchController {
	return &BranchController{DB: db, Validate: v}
}

func (ctl *BranchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.BranchModel{}).
		Where("branch_name = ?", req.BranchName).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonError(c, http.StatusConflict, "branch name already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "branch created", m)
}

func (ctl *BranchController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid branch id")
	}
	var m model.BranchModel
	if err := ctl.DB.Where("branch_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *BranchController) List(c *fiber.Ctx) error {
	var q dto.ListBranchesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.BranchModel{})
	if q.Status != "" {
		db = db.Where("branch_status = ?", q.Status)
	}
	if q.Search != "" {
		db = db.Where("branch_name ILIKE ?", "%"+q.Search+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []model.BranchModel
	if err := db.Order("branch_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *BranchController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid branch id")
	}

	var req dto.PatchBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.BranchModel
	if err := ctl.DB.Where("branch_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}

	if req.BranchName != nil && *req.BranchName != m.BranchName {
		var dup int64
		if err := ctl.DB.Model(&model.BranchModel{}).
			Where("branch_name = ? AND branch_id <> ?", *req.BranchName, id).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "branch name already exists")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "branch updated", m)
}

func (ctl *BranchController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid branch id")
	}

	var m model.BranchModel
	if err := ctl.DB.Where("branch_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}

	// the branch is the ownership root; refuse to delete while anything
	// still references it
	refs := []struct {
		name  string
		model any
		where string
	}{
		{"rooms", &roomModel.RoomModel{}, "room_branch_id = ?"},
		{"teachers", &teacherModel.TeacherModel{}, "teacher_branch_id = ?"},
		{"students", &studentModel.StudentModel{}, "student_branch_id = ?"},
		{"courses", &courseModel.CourseModel{}, "course_branch_id = ?"},
		{"groups", &groupModel.GroupModel{}, "group_branch_id = ?"},
	}
	for _, ref := range refs {
		var n int64
		if err := ctl.DB.Model(ref.model).Where(ref.where, id).Count(&n).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if n > 0 {
			return helper.JsonError(c, http.StatusConflict, "branch still has "+ref.name)
		}
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "branch deleted", fiber.Map{"branch_id": id})
}
