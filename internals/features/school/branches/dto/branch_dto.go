package dto

import (
	"strings"

	"edumanage_backend/internals/features/school/branches/model"
)

type CreateBranchRequest struct {
	BranchName    string  `json:"branch_name" validate:"required,min=2,max=100"`
	BranchAddress *string `json:"branch_address,omitempty" validate:"omitempty,max=500"`
	BranchPhone   *string `json:"branch_phone,omitempty" validate:"omitempty,max=30"`
	BranchStatus  *string `json:"branch_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CreateBranchRequest) Normalize() {
	r.BranchName = strings.TrimSpace(r.BranchName)
}

func (r CreateBranchRequest) ToModel() model.BranchModel {
	m := model.BranchModel{
		BranchName:    r.BranchName,
		BranchAddress: r.BranchAddress,
		BranchPhone:   r.BranchPhone,
		BranchStatus:  model.BranchActive,
	}
	if r.BranchStatus != nil {
		m.BranchStatus = model.BranchStatus(*r.BranchStatus)
	}
	return m
}

type PatchBranchRequest struct {
	BranchName    *string `json:"branch_name,omitempty" validate:"omitempty,min=2,max=100"`
	BranchAddress *string `json:"branch_address,omitempty" validate:"omitempty,max=500"`
	BranchPhone   *string `json:"branch_phone,omitempty" validate:"omitempty,max=30"`
	BranchStatus  *string `json:"branch_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r PatchBranchRequest) Apply(m *model.BranchModel) {
	if r.BranchName != nil {
		m.BranchName = strings.TrimSpace(*r.BranchName)
	}
	if r.BranchAddress != nil {
		m.BranchAddress = r.BranchAddress
	}
	if r.BranchPhone != nil {
		m.BranchPhone = r.BranchPhone
	}
	if r.BranchStatus != nil {
		m.BranchStatus = model.BranchStatus(*r.BranchStatus)
	}
}

type ListBranchesQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

func (q *ListBranchesQuery) Normalize() {
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
}
