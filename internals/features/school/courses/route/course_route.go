package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/features/school/courses/controller"
	authMW "edumanage_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	courseCtl := controller.NewCourseController(db, v)
	categoryCtl := controller.NewCategoryController(db, v)

	cat := api.Group("/categories")
	cat.Get("/", categoryCtl.List)

	catW := cat.Group("", authMW.RequireWriter())
	catW.Post("/", categoryCtl.Create)
	catW.Patch("/:id", categoryCtl.Patch)
	catW.Delete("/:id", categoryCtl.Delete)

	r := api.Group("/courses")
	r.Get("/", courseCtl.List)
	r.Get("/:id", courseCtl.GetByID)

	w := r.Group("", authMW.RequireWriter())
	w.Post("/", courseCtl.Create)
	w.Patch("/:id", courseCtl.Patch)
	w.Delete("/:id", courseCtl.Delete)
}
