package controller

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	branchModel "edumanage_backend/internals/features/school/branches/model"
	courseModel "edumanage_backend/internals/features/school/courses/model"
	"edumanage_backend/internals/features/school/groups/dto"
	"edumanage_backend/internals/features/school/groups/model"
	"edumanage_backend/internals/features/school/groups/service"
	roomModel "edumanage_backend/internals/features/school/rooms/model"
	teacherModel "edumanage_backend/internals/features/school/teachers/model"
	helper "edumanage_backend/internals/helpers"
	"edumanage_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GroupController {
	return &GroupController{DB: db, Validate: v}
}

func writeErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.WritePGError(c, err)
}

func writeScheduleConflict(c *fiber.Ctx, conflicts []service.ConflictRecord) error {
	return c.Status(http.StatusConflict).JSON(fiber.Map{
		"success":    false,
		"message":    "schedule conflict detected",
		"error_code": "SCHEDULE_CONFLICT",
		"conflicts":  conflicts,
	})
}

/* =========================
   Dependency validation
   ========================= */

type depChecks struct {
	Branch  bool
	Course  bool
	Teacher bool
	Room    bool
}

// validateDependencies runs the independent existence/status checks
// concurrently; they touch disjoint entities, and the first failure wins.
func (ctl *GroupController) validateDependencies(ctx context.Context, g *model.GroupModel, checks depChecks) error {
	eg, gctx := errgroup.WithContext(ctx)

	if checks.Branch {
		eg.Go(func() error {
			var b branchModel.BranchModel
			if err := ctl.DB.WithContext(gctx).
				Where("branch_id = ?", g.GroupBranchID).
				First(&b).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusNotFound, "branch not found")
				}
				return err
			}
			if b.BranchStatus != branchModel.BranchActive {
				return fiber.NewError(http.StatusBadRequest, "branch is not active")
			}
			return nil
		})
	}

	if checks.Course {
		eg.Go(func() error {
			var crs courseModel.CourseModel
			if err := ctl.DB.WithContext(gctx).
				Where("course_id = ?", g.GroupCourseID).
				First(&crs).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusNotFound, "course not found")
				}
				return err
			}
			if crs.CourseStatus != courseModel.CourseActive {
				return fiber.NewError(http.StatusBadRequest, "course is not active")
			}
			if crs.CourseBranchID != g.GroupBranchID {
				return fiber.NewError(http.StatusBadRequest, "course belongs to a different branch")
			}
			return nil
		})
	}

	if checks.Teacher && g.GroupTeacherID != nil {
		eg.Go(func() error {
			var t teacherModel.TeacherModel
			if err := ctl.DB.WithContext(gctx).
				Where("teacher_id = ?", *g.GroupTeacherID).
				First(&t).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusNotFound, "teacher not found")
				}
				return err
			}
			if t.TeacherStatus != teacherModel.TeacherActive {
				return fiber.NewError(http.StatusBadRequest, "teacher is not active")
			}
			if t.TeacherBranchID != g.GroupBranchID {
				return fiber.NewError(http.StatusBadRequest, "teacher belongs to a different branch")
			}
			return nil
		})
	}

	if checks.Room && g.GroupRoomID != nil {
		eg.Go(func() error {
			var r roomModel.RoomModel
			if err := ctl.DB.WithContext(gctx).
				Where("room_id = ?", *g.GroupRoomID).
				First(&r).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusNotFound, "room not found")
				}
				return err
			}
			if r.RoomBranchID != g.GroupBranchID {
				return fiber.NewError(http.StatusBadRequest, "room belongs to a different branch")
			}
			return nil
		})
	}

	return eg.Wait()
}

/* ========================= Create ========================= */

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.validateDependencies(c.Context(), &m, depChecks{Branch: true, Course: true, Teacher: true, Room: true}); err != nil {
		return writeErr(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.GroupModel{}).
		Where("group_branch_id = ? AND group_name = ?", m.GroupBranchID, m.GroupName).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonError(c, http.StatusConflict, "group name already exists in this branch")
	}

	// conflict check and insert commit atomically so two racing creates for
	// the same teacher/room slot cannot both pass the read
	var conflicts []service.ConflictRecord
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		found, err := service.CheckScheduleConflicts(tx, service.Candidate{
			TeacherID: m.GroupTeacherID,
			RoomID:    m.GroupRoomID,
			Days:      m.GroupDays,
			StartTime: m.GroupStartTime,
		})
		if err != nil {
			return err
		}
		if len(found) > 0 {
			conflicts = found
			return &service.ScheduleConflictError{Conflicts: found}
		}
		return tx.Create(&m).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		var sce *service.ScheduleConflictError
		if errors.As(txErr, &sce) {
			return writeScheduleConflict(c, conflicts)
		}
		log.Printf("[Group.Create] tx error: %v", txErr)
		return writeErr(c, txErr)
	}

	return helper.JsonCreated(c, "group created", m)
}

/* ========================= Patch ========================= */

func (ctl *GroupController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid group id")
	}

	var req dto.PatchGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.GroupModel
	if err := ctl.DB.Where("group_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	if req.GroupName != nil && *req.GroupName != m.GroupName {
		var dup int64
		if err := ctl.DB.Model(&model.GroupModel{}).
			Where("group_branch_id = ? AND group_name = ? AND group_id <> ?", m.GroupBranchID, *req.GroupName, id).
			Count(&dup).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if dup > 0 {
			return helper.JsonError(c, http.StatusConflict, "group name already exists in this branch")
		}
	}

	changes, err := req.Apply(&m)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// re-validate only the dependencies that are part of the change set
	if err := ctl.validateDependencies(c.Context(), &m, depChecks{
		Course:  changes.Course,
		Teacher: changes.Teacher,
		Room:    changes.Room,
	}); err != nil {
		return writeErr(c, err)
	}

	var conflicts []service.ConflictRecord
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if changes.Schedule {
			excl := m.GroupID
			found, err := service.CheckScheduleConflicts(tx, service.Candidate{
				TeacherID:      m.GroupTeacherID,
				RoomID:         m.GroupRoomID,
				Days:           m.GroupDays,
				StartTime:      m.GroupStartTime,
				ExcludeGroupID: &excl,
			})
			if err != nil {
				return err
			}
			if len(found) > 0 {
				conflicts = found
				return &service.ScheduleConflictError{Conflicts: found}
			}
		}
		return tx.Save(&m).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		var sce *service.ScheduleConflictError
		if errors.As(txErr, &sce) {
			return writeScheduleConflict(c, conflicts)
		}
		log.Printf("[Group.Patch] tx error: %v", txErr)
		return writeErr(c, txErr)
	}

	return helper.JsonUpdated(c, "group updated", m)
}

/* ========================= Delete ========================= */

func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid group id")
	}

	var m model.GroupModel
	if err := ctl.DB.Where("group_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	var enrolled int64
	if err := ctl.DB.Model(&model.StudentGroupModel{}).
		Where("student_group_group_id = ?", id).
		Count(&enrolled).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if enrolled > 0 {
		return helper.JsonError(c, http.StatusConflict, "group still has enrolled students")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "group deleted", fiber.Map{"group_id": id})
}

/* ========================= Get / List ========================= */

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid group id")
	}
	var m model.GroupModel
	if err := ctl.DB.Where("group_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", m)
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	var q dto.ListGroupsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.GroupModel{})

	db, err := applyGroupFilters(db, q)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.GroupModel
	if err := db.Order("group_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// applyGroupFilters translates each optional filter dimension into an
// explicit predicate.
func applyGroupFilters(db *gorm.DB, q dto.ListGroupsQuery) (*gorm.DB, error) {
	addUUID := func(db *gorm.DB, col, raw string) (*gorm.DB, error) {
		if strings.TrimSpace(raw) == "" {
			return db, nil
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return db, errors.New("invalid " + col)
		}
		return db.Where(col+" = ?", id), nil
	}

	var err error
	if db, err = addUUID(db, "group_branch_id", q.BranchID); err != nil {
		return db, err
	}
	if db, err = addUUID(db, "group_course_id", q.CourseID); err != nil {
		return db, err
	}
	if db, err = addUUID(db, "group_teacher_id", q.TeacherID); err != nil {
		return db, err
	}
	if db, err = addUUID(db, "group_room_id", q.RoomID); err != nil {
		return db, err
	}

	if q.Status != "" {
		db = db.Where("group_status = ?", q.Status)
	}
	if len(q.Days) > 0 {
		db = db.Where("group_days && ?", pq.Array(q.Days))
	}
	if q.Search != "" {
		db = db.Where("group_name ILIKE ?", "%"+q.Search+"%")
	}

	addDate := func(db *gorm.DB, cond, raw string) (*gorm.DB, error) {
		if strings.TrimSpace(raw) == "" {
			return db, nil
		}
		if _, err := dbtimeParseDate(raw); err != nil {
			return db, err
		}
		return db.Where(cond, raw), nil
	}
	if db, err = addDate(db, "group_start_date >= ?", q.StartDateFrom); err != nil {
		return db, err
	}
	if db, err = addDate(db, "group_start_date <= ?", q.StartDateTo); err != nil {
		return db, err
	}
	if db, err = addDate(db, "group_end_date >= ?", q.EndDateFrom); err != nil {
		return db, err
	}
	if db, err = addDate(db, "group_end_date <= ?", q.EndDateTo); err != nil {
		return db, err
	}

	if strings.TrimSpace(q.TimeFrom) != "" {
		tod, err := dbtime.Parse(q.TimeFrom)
		if err != nil {
			return db, errors.New("invalid time_from")
		}
		db = db.Where("group_start_time >= ?", tod.String())
	}
	if strings.TrimSpace(q.TimeTo) != "" {
		tod, err := dbtime.Parse(q.TimeTo)
		if err != nil {
			return db, errors.New("invalid time_to")
		}
		db = db.Where("group_start_time <= ?", tod.String())
	}

	return db, nil
}

func dbtimeParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", errors.New("invalid date " + s + ": expected YYYY-MM-DD")
	}
	return s, nil
}

/* ========================= Check-conflicts (dry-run) ========================= */

func (ctl *GroupController) CheckConflicts(c *fiber.Ctx) error {
	var req dto.CheckConflictsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	cand := service.Candidate{
		TeacherID:      req.GroupTeacherID,
		RoomID:         req.GroupRoomID,
		Days:           req.GroupDays,
		ExcludeGroupID: req.ExcludeGroupID,
	}
	if req.GroupStartTime != nil {
		tod, err := dbtime.Parse(*req.GroupStartTime)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "group_start_time: expected HH:mm[:ss]")
		}
		cand.StartTime = &tod
	}

	conflicts, err := service.CheckScheduleConflicts(ctl.DB.WithContext(c.Context()), cand)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if conflicts == nil {
		conflicts = []service.ConflictRecord{}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"has_conflicts": len(conflicts) > 0,
		"conflicts":     conflicts,
	})
}
