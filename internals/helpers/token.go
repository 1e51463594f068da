package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by the auth middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
