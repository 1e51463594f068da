package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/stats/controller"
)

func StatsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db)

	api.Get("/stats", ctl.GetBranchStats)
}
