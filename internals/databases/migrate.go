package database

import (
	"log"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	courseModel "edumanage_backend/internals/features/school/courses/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	roomModel "edumanage_backend/internals/features/school/rooms/model"
	studentModel "edumanage_backend/internals/features/school/students/model"
	teacherModel "edumanage_backend/internals/features/school/teachers/model"
	authModel "edumanage_backend/internals/features/users/auth/model"
)

// Migrate runs gorm AutoMigrate for all tables. Unique indexes (room name per
// branch, enrollment pair, user/student email) live in the model tags so the
// storage layer backs up the application-level checks.
func Migrate() {
	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&branchModel.BranchModel{},
		&roomModel.RoomModel{},
		&courseModel.CategoryModel{},
		&courseModel.CourseModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&groupModel.GroupModel{},
		&groupModel.StudentGroupModel{},
	)
	if err != nil {
		log.Fatalf("[DB] migrate failed: %v", err)
	}
	log.Println("[DB] migrations applied.")
}
