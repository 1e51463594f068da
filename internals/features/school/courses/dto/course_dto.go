package dto

import (
	"strings"

	"github.com/google/uuid"

	"edumanage_backend/internals/features/school/courses/model"
)

/* =======================================================
   CATEGORY
   ======================================================= */

type CreateCategoryRequest struct {
	CategoryBranchID uuid.UUID `json:"category_branch_id" validate:"required"`
	CategoryName     string    `json:"category_name" validate:"required,min=2,max=100"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.CategoryName = strings.TrimSpace(r.CategoryName)
}

func (r CreateCategoryRequest) ToModel() model.CategoryModel {
	return model.CategoryModel{
		CategoryBranchID: r.CategoryBranchID,
		CategoryName:     r.CategoryName,
	}
}

type PatchCategoryRequest struct {
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,min=2,max=100"`
}

/* =======================================================
   COURSE
   ======================================================= */

type CreateCourseRequest struct {
	CourseBranchID   uuid.UUID `json:"course_branch_id" validate:"required"`
	CourseCategoryID uuid.UUID `json:"course_category_id" validate:"required"`
	CourseName       string    `json:"course_name" validate:"required,min=2,max=150"`
	CourseStatus     *string   `json:"course_status,omitempty" validate:"omitempty,oneof=ACTIVE DRAFT ARCHIVED"`

	CoursePrice          float64 `json:"course_price" validate:"min=0"`
	CourseDurationHours  int     `json:"course_duration_hours" validate:"min=0"`
	CourseDurationMonths int     `json:"course_duration_months" validate:"min=0"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	m := model.CourseModel{
		CourseBranchID:       r.CourseBranchID,
		CourseCategoryID:     r.CourseCategoryID,
		CourseName:           r.CourseName,
		CourseStatus:         model.CourseDraft,
		CoursePrice:          r.CoursePrice,
		CourseDurationHours:  r.CourseDurationHours,
		CourseDurationMonths: r.CourseDurationMonths,
	}
	if r.CourseStatus != nil {
		m.CourseStatus = model.CourseStatus(*r.CourseStatus)
	}
	return m
}

type PatchCourseRequest struct {
	CourseCategoryID *uuid.UUID `json:"course_category_id,omitempty"`
	CourseName       *string    `json:"course_name,omitempty" validate:"omitempty,min=2,max=150"`
	CourseStatus     *string    `json:"course_status,omitempty" validate:"omitempty,oneof=ACTIVE DRAFT ARCHIVED"`

	CoursePrice          *float64 `json:"course_price,omitempty" validate:"omitempty,min=0"`
	CourseDurationHours  *int     `json:"course_duration_hours,omitempty" validate:"omitempty,min=0"`
	CourseDurationMonths *int     `json:"course_duration_months,omitempty" validate:"omitempty,min=0"`
}

// Apply merges the patch and reports whether the category reference changed.
func (r PatchCourseRequest) Apply(m *model.CourseModel) (categoryChanged bool) {
	if r.CourseCategoryID != nil {
		m.CourseCategoryID = *r.CourseCategoryID
		categoryChanged = true
	}
	if r.CourseName != nil {
		m.CourseName = strings.TrimSpace(*r.CourseName)
	}
	if r.CourseStatus != nil {
		m.CourseStatus = model.CourseStatus(*r.CourseStatus)
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	if r.CourseDurationHours != nil {
		m.CourseDurationHours = *r.CourseDurationHours
	}
	if r.CourseDurationMonths != nil {
		m.CourseDurationMonths = *r.CourseDurationMonths
	}
	return categoryChanged
}

type ListCoursesQuery struct {
	BranchID   string `query:"branch_id"`
	CategoryID string `query:"category_id"`
	Status     string `query:"status"`
	Search     string `query:"search"`
}

func (q *ListCoursesQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
}
