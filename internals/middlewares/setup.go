package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "edumanage_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
