package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/rooms/controller"
	authMW "edumanage_backend/internals/middlewares/auth"
)

func RoomRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	r := api.Group("/rooms")
	r.Get("/", ctl.List)
	r.Post("/check-availability", ctl.CheckAvailability)
	r.Get("/:id", ctl.GetByID)

	w := r.Group("", authMW.RequireWriter())
	w.Post("/", ctl.Create)
	w.Patch("/:id", ctl.Patch)
	w.Delete("/:id", ctl.Delete)
}
