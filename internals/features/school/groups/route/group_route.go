package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/groups/controller"
	authMW "edumanage_backend/internals/middlewares/auth"
)

func GroupRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	r := api.Group("/groups")
	r.Get("/", ctl.List)
	r.Post("/check-conflicts", ctl.CheckConflicts)
	r.Get("/:id", ctl.GetByID)
	r.Get("/:id/students", ctl.ListGroupStudents)

	w := r.Group("", authMW.RequireWriter())
	w.Post("/", ctl.Create)
	w.Patch("/:id", ctl.Patch)
	w.Delete("/:id", ctl.Delete)

	sg := api.Group("/student-groups", authMW.RequireWriter())
	sg.Post("/", ctl.Enroll)
	sg.Delete("/", ctl.Unenroll)
}
