package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/groups/dto"
	"edumanage_backend/internals/features/school/groups/model"
	studentModel "edumanage_backend/internals/features/school/students/model"
	helper "edumanage_backend/internals/helpers"
)

/* =======================================================
   Enrollment - StudentGroup join rows. Pure existence and
   uniqueness checks, no scheduling involved.
   ======================================================= */

func (ctl *GroupController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var st studentModel.StudentModel
	if err := ctl.DB.Where("student_id = ?", req.StudentGroupStudentID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.WritePGError(c, err)
	}
	if st.StudentBranchID != req.StudentGroupBranchID {
		return helper.JsonError(c, http.StatusBadRequest, "student belongs to a different branch")
	}

	var g model.GroupModel
	if err := ctl.DB.Where("group_id = ?", req.StudentGroupGroupID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}
	if g.GroupBranchID != req.StudentGroupBranchID {
		return helper.JsonError(c, http.StatusBadRequest, "group belongs to a different branch")
	}

	var existing model.StudentGroupModel
	err := ctl.DB.Where(
		"student_group_group_id = ? AND student_group_student_id = ?",
		req.StudentGroupGroupID, req.StudentGroupStudentID,
	).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, http.StatusConflict, "student is already enrolled in this group")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.WritePGError(c, err)
	}

	row := model.StudentGroupModel{
		StudentGroupGroupID:   req.StudentGroupGroupID,
		StudentGroupStudentID: req.StudentGroupStudentID,
		StudentGroupBranchID:  req.StudentGroupBranchID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		// unique index on (group_id, student_id) backs up the check above
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "student enrolled", row)
}

func (ctl *GroupController) Unenroll(c *fiber.Ctx) error {
	var req dto.UnenrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var row model.StudentGroupModel
	err := ctl.DB.Where(
		"student_group_group_id = ? AND student_group_student_id = ?",
		req.StudentGroupGroupID, req.StudentGroupStudentID,
	).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "enrollment not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "student unenrolled", fiber.Map{
		"student_group_id": row.StudentGroupID,
	})
}

// ListGroupStudents returns the students enrolled in a group.
func (ctl *GroupController) ListGroupStudents(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid group id")
	}

	var g model.GroupModel
	if err := ctl.DB.Where("group_id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Where("student_id IN (?)", ctl.DB.Model(&model.StudentGroupModel{}).
			Select("student_group_student_id").
			Where("student_group_group_id = ?", id)).
		Order("student_fullname ASC").
		Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "", students)
}
