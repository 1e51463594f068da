package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"edumanage_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentBranchID uuid.UUID `json:"student_branch_id" validate:"required"`
	StudentFullname string    `json:"student_fullname" validate:"required,min=2,max=150"`
	StudentEmail    *string   `json:"student_email,omitempty" validate:"omitempty,email,max=150"`
	StudentPhone    *string   `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentBirthday *string   `json:"student_birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFullname = strings.TrimSpace(r.StudentFullname)
	if r.StudentEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.StudentEmail))
		r.StudentEmail = &v
	}
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	m := model.StudentModel{
		StudentBranchID: r.StudentBranchID,
		StudentFullname: r.StudentFullname,
		StudentEmail:    r.StudentEmail,
		StudentPhone:    r.StudentPhone,
	}
	if r.StudentBirthday != nil && strings.TrimSpace(*r.StudentBirthday) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.StudentBirthday))
		if err != nil {
			return m, fmt.Errorf("student_birthday: expected YYYY-MM-DD")
		}
		m.StudentBirthday = &d
	}
	return m, nil
}

type PatchStudentRequest struct {
	StudentFullname *string `json:"student_fullname,omitempty" validate:"omitempty,min=2,max=150"`
	StudentEmail    *string `json:"student_email,omitempty" validate:"omitempty,email,max=150"`
	StudentPhone    *string `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentBirthday *string `json:"student_birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r PatchStudentRequest) Apply(m *model.StudentModel) error {
	if r.StudentFullname != nil {
		m.StudentFullname = strings.TrimSpace(*r.StudentFullname)
	}
	if r.StudentEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.StudentEmail))
		m.StudentEmail = &v
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentBirthday != nil {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.StudentBirthday))
		if err != nil {
			return fmt.Errorf("student_birthday: expected YYYY-MM-DD")
		}
		m.StudentBirthday = &d
	}
	return nil
}

type ListStudentsQuery struct {
	BranchID string `query:"branch_id"`
	Search   string `query:"search"`
}

func (q *ListStudentsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
}
