package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	"edumanage_backend/internals/features/users/auth/controller"
	rateLimiter "edumanage_backend/internals/middlewares"
	authMW "edumanage_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuthController(db, v)

	// Base: /api/auth
	base := app.Group("/api/auth")

	base.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	base.Post("/login-google", rateLimiter.LoginRateLimiter(), ctl.LoginGoogle)
	base.Post("/refresh", ctl.RefreshToken)

	// Protected
	protected := base.Group("", authMW.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Get("/me", ctl.Me)

	// Admin only
	admin := base.Group("", authMW.AuthMiddleware(db), authMW.RequireRoles(constants.RoleAdmin))
	admin.Post("/register", rateLimiter.RegisterRateLimiter(), ctl.Register)
	admin.Patch("/users/:id", ctl.UpdateUser)
}
