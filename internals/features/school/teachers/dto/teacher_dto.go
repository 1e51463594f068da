package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"edumanage_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherBranchID uuid.UUID      `json:"teacher_branch_id" validate:"required"`
	TeacherFullname string         `json:"teacher_fullname" validate:"required,min=2,max=150"`
	TeacherPhone    *string        `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
	TeacherEmail    *string        `json:"teacher_email,omitempty" validate:"omitempty,email,max=150"`
	TeacherContact  datatypes.JSON `json:"teacher_contact,omitempty"`
	TeacherStatus   *string        `json:"teacher_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeacherFullname = strings.TrimSpace(r.TeacherFullname)
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	m := model.TeacherModel{
		TeacherBranchID: r.TeacherBranchID,
		TeacherFullname: r.TeacherFullname,
		TeacherPhone:    r.TeacherPhone,
		TeacherEmail:    r.TeacherEmail,
		TeacherContact:  r.TeacherContact,
		TeacherStatus:   model.TeacherActive,
	}
	if r.TeacherStatus != nil {
		m.TeacherStatus = model.TeacherStatus(*r.TeacherStatus)
	}
	return m
}

type PatchTeacherRequest struct {
	TeacherFullname *string        `json:"teacher_fullname,omitempty" validate:"omitempty,min=2,max=150"`
	TeacherPhone    *string        `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
	TeacherEmail    *string        `json:"teacher_email,omitempty" validate:"omitempty,email,max=150"`
	TeacherContact  datatypes.JSON `json:"teacher_contact,omitempty"`
	TeacherStatus   *string        `json:"teacher_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r PatchTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherFullname != nil {
		m.TeacherFullname = strings.TrimSpace(*r.TeacherFullname)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = r.TeacherPhone
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = r.TeacherEmail
	}
	if len(r.TeacherContact) > 0 {
		m.TeacherContact = r.TeacherContact
	}
	if r.TeacherStatus != nil {
		m.TeacherStatus = model.TeacherStatus(*r.TeacherStatus)
	}
}

type ListTeachersQuery struct {
	BranchID string `query:"branch_id"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}

func (q *ListTeachersQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
}
