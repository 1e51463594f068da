package dto

import "strings"

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=150"`
	UserEmail    string `json:"user_email" validate:"required,email,max=150"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=ADMIN MANAGER TEACHER STUDENT"`
}

func (r *RegisterRequest) Normalize() {
	r.UserFullName = strings.TrimSpace(r.UserFullName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.UserRole = strings.ToUpper(strings.TrimSpace(r.UserRole))
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UpdateUserRequest struct {
	UserFullName *string `json:"user_full_name,omitempty" validate:"omitempty,min=2,max=150"`
	UserRole     *string `json:"user_role,omitempty" validate:"omitempty,oneof=ADMIN MANAGER TEACHER STUDENT"`
	UserIsActive *bool   `json:"user_is_active,omitempty"`
}
