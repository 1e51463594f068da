package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	courseModel "edumanage_backend/internals/features/school/courses/model"
	groupModel "edumanage_backend/internals/features/school/groups/model"
	roomModel "edumanage_backend/internals/features/school/rooms/model"
	studentModel "edumanage_backend/internals/features/school/students/model"
	teacherModel "edumanage_backend/internals/features/school/teachers/model"
	helper "edumanage_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type branchStats struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`

	TotalStudents    int64            `json:"total_students"`
	TotalRooms       int64            `json:"total_rooms"`
	TotalCourses     int64            `json:"total_courses"`
	TotalEnrollments int64            `json:"total_enrollments"`
	TeachersByStatus map[string]int64 `json:"teachers_by_status"`
	GroupsByStatus   map[string]int64 `json:"groups_by_status"`
}

type statusCount struct {
	Status string
	Total  int64
}

// GetBranchStats aggregates branch-level counters. Counts run concurrently
// against the pooled connection since each is independent.
func (ctl *StatsController) GetBranchStats(c *fiber.Ctx) error {
	branchID, err := helper.ParseUUIDQuery(c, "branch_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid branch_id")
	}

	var b branchModel.BranchModel
	if err := ctl.DB.Where("branch_id = ?", branchID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "branch not found")
		}
		return helper.WritePGError(c, err)
	}

	out := branchStats{
		BranchID:         branchID.String(),
		BranchName:       b.BranchName,
		TeachersByStatus: map[string]int64{},
		GroupsByStatus:   map[string]int64{},
	}

	g, _ := errgroup.WithContext(c.Context())

	g.Go(func() error {
		return ctl.DB.Model(&studentModel.StudentModel{}).
			Where("student_branch_id = ?", branchID).
			Count(&out.TotalStudents).Error
	})
	g.Go(func() error {
		return ctl.DB.Model(&roomModel.RoomModel{}).
			Where("room_branch_id = ?", branchID).
			Count(&out.TotalRooms).Error
	})
	g.Go(func() error {
		return ctl.DB.Model(&courseModel.CourseModel{}).
			Where("course_branch_id = ?", branchID).
			Count(&out.TotalCourses).Error
	})
	g.Go(func() error {
		return ctl.DB.Model(&groupModel.StudentGroupModel{}).
			Where("student_group_branch_id = ?", branchID).
			Count(&out.TotalEnrollments).Error
	})

	var teacherRows, groupRows []statusCount
	g.Go(func() error {
		return ctl.DB.Model(&teacherModel.TeacherModel{}).
			Select("teacher_status AS status, COUNT(*) AS total").
			Where("teacher_branch_id = ?", branchID).
			Group("teacher_status").
			Scan(&teacherRows).Error
	})
	g.Go(func() error {
		return ctl.DB.Model(&groupModel.GroupModel{}).
			Select("group_status AS status, COUNT(*) AS total").
			Where("group_branch_id = ?", branchID).
			Group("group_status").
			Scan(&groupRows).Error
	})

	if err := g.Wait(); err != nil {
		return helper.WritePGError(c, err)
	}

	for _, r := range teacherRows {
		out.TeachersByStatus[r.Status] = r.Total
	}
	for _, r := range groupRows {
		out.GroupsByStatus[r.Status] = r.Total
	}

	return helper.JsonOK(c, "", out)
}
