package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"edumanage_backend/internals/configs"
)

// CorsMiddleware builds the CORS policy. Origins come from ALLOWED_ORIGINS
// (comma separated) with a localhost default for development.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("ALLOWED_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://localhost:3000",
	}, ","))
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
