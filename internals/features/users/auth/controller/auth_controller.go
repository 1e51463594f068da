package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/users/auth/dto"
	"edumanage_backend/internals/features/users/auth/model"
	"edumanage_backend/internals/features/users/auth/service"
	helper "edumanage_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}
	return service.Register(ac.DB, c, req)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}
	return service.Login(ac.DB, c, req)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}
	return service.LoginGoogle(ac.DB, c, req.IDToken)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid user id in context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid user id in context")
	}

	var u model.UserModel
	if err := ac.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", u)
}

func (ac *AuthController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}
	return service.UpdateUser(ac.DB, c, id, req)
}
