package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/students/controller"
	authMW "edumanage_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	r := api.Group("/students")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)

	w := r.Group("", authMW.RequireWriter())
	w.Post("/", ctl.Create)
	w.Patch("/:id", ctl.Patch)
	w.Delete("/:id", ctl.Delete)
}
