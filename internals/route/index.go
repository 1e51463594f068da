package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "edumanage_backend/internals/features/users/auth/route"

	branchRoute "edumanage_backend/internals/features/school/branches/route"
	courseRoute "edumanage_backend/internals/features/school/courses/route"
	groupRoute "edumanage_backend/internals/features/school/groups/route"
	roomRoute "edumanage_backend/internals/features/school/rooms/route"
	statsRoute "edumanage_backend/internals/features/school/stats/route"
	studentRoute "edumanage_backend/internals/features/school/students/route"
	teacherRoute "edumanage_backend/internals/features/school/teachers/route"

	authMW "edumanage_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	v := validator.New()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, v)

	// ===================== AUTHENTICATED (/api/a) =====================
	// Reads for any authenticated role; writes gated per-route to ADMIN/MANAGER.
	log.Println("[INFO] Setting up /api/a group...")
	api := app.Group("/api/a", authMW.AuthMiddleware(db))

	log.Println("[INFO] Mounting school routes...")
	branchRoute.BranchRoutes(api, db, v)
	roomRoute.RoomRoutes(api, db, v)
	courseRoute.CourseRoutes(api, db, v)
	teacherRoute.TeacherRoutes(api, db, v)
	studentRoute.StudentRoutes(api, db, v)
	groupRoute.GroupRoutes(api, db, v)
	statsRoute.StatsRoutes(api, db)
}
