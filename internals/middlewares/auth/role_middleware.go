package auth

import (
	"github.com/gofiber/fiber/v2"

	"edumanage_backend/internals/constants"
	helper "edumanage_backend/internals/helpers"
)

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware so the role Local is populated.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" || !allowed[role] {
			return helper.JsonError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

// RequireWriter restricts mutations to ADMIN/MANAGER.
func RequireWriter() fiber.Handler {
	return RequireRoles(constants.WriterRoles...)
}
