package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func ParseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Query(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// ValidatorError converts validator.v10 errors into the standard 400 body.
func ValidatorError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
