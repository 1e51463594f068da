package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"edumanage_backend/internals/features/school/groups/model"
	"edumanage_backend/internals/helpers/dbtime"
)

// dryRunDB opens gorm against a dummy dialector in dry-run mode and captures
// the SQL each query would run.
func dryRunDB(t *testing.T) (*gorm.DB, *string, *[]any) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var capturedSQL string
	var capturedVars []any
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		capturedSQL = tx.Statement.SQL.String()
		capturedVars = tx.Statement.Vars
	})
	require.NoError(t, err)
	return db, &capturedSQL, &capturedVars
}

func mkGroup(name string, days []string, start string) model.GroupModel {
	g := model.GroupModel{
		GroupID:   uuid.New(),
		GroupName: name,
		GroupDays: pq.StringArray(days),
	}
	if start != "" {
		tod, _ := dbtime.Parse(start)
		g.GroupStartTime = &tod
	}
	return g
}

func TestBuildConflictRecords(t *testing.T) {
	a := mkGroup("Morning English A", []string{"MON", "WED", "FRI"}, "09:00:00")
	b := mkGroup("Math Intensive", []string{"FRI", "SAT"}, "09:00:00")

	recs := BuildConflictRecords(TeacherConflict, []string{"WED", "FRI"}, []model.GroupModel{a, b})
	require.Len(t, recs, 2)

	assert.Equal(t, TeacherConflict, recs[0].ConflictType)
	assert.Equal(t, a.GroupID, recs[0].ConflictingGroupID)
	assert.Equal(t, "Morning English A", recs[0].ConflictingGroupName)
	assert.Equal(t, []string{"WED", "FRI"}, recs[0].ConflictDays)
	assert.Equal(t, "09:00:00", recs[0].ConflictTime)

	assert.Equal(t, b.GroupID, recs[1].ConflictingGroupID)
	assert.Equal(t, []string{"FRI"}, recs[1].ConflictDays)
}

func TestBuildConflictRecordsKeepsRowOrder(t *testing.T) {
	first := mkGroup("first", []string{"MON"}, "08:00")
	second := mkGroup("second", []string{"MON"}, "08:00")

	recs := BuildConflictRecords(RoomConflict, []string{"MON"}, []model.GroupModel{first, second})
	require.Len(t, recs, 2)
	assert.Equal(t, first.GroupID, recs[0].ConflictingGroupID)
	assert.Equal(t, second.GroupID, recs[1].ConflictingGroupID)
	assert.Equal(t, RoomConflict, recs[0].ConflictType)
}

func TestBuildConflictRecordsSkipsDisjointDays(t *testing.T) {
	g := mkGroup("weekend only", []string{"SAT", "SUN"}, "10:00")
	recs := BuildConflictRecords(TeacherConflict, []string{"MON", "TUE"}, []model.GroupModel{g})
	assert.Empty(t, recs)
}

func TestBuildConflictRecordsNilStartTime(t *testing.T) {
	g := mkGroup("no time yet", []string{"MON"}, "")
	recs := BuildConflictRecords(TeacherConflict, []string{"MON"}, []model.GroupModel{g})
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].ConflictTime)
}

func TestScheduleConflictErrorMessage(t *testing.T) {
	err := &ScheduleConflictError{Conflicts: []ConflictRecord{{}, {}}}
	assert.Equal(t, "schedule conflict: 2 overlapping assignment(s)", err.Error())

	var nilErr *ScheduleConflictError
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestFindOverlappingQueryShape(t *testing.T) {
	teacherID := uuid.New()
	excludeID := uuid.New()
	tod, _ := dbtime.Parse("09:00")

	t.Run("update excludes the group itself", func(t *testing.T) {
		db, sql, vars := dryRunDB(t)

		cand := Candidate{
			TeacherID:      &teacherID,
			Days:           []string{"MON", "WED"},
			StartTime:      &tod,
			ExcludeGroupID: &excludeID,
		}
		_, err := findOverlapping(db, "group_teacher_id", teacherID, cand)
		require.NoError(t, err)

		assert.Contains(t, *sql, "group_teacher_id = ?")
		assert.Contains(t, *sql, "group_start_time = ?")
		assert.Contains(t, *sql, "group_days && ?")
		assert.Contains(t, *sql, "group_id <> ?")
		assert.Contains(t, *sql, "ORDER BY group_created_at ASC")

		assert.Contains(t, *vars, teacherID)
		assert.Contains(t, *vars, "09:00:00")
		assert.Contains(t, *vars, excludeID)
	})

	t.Run("create carries no exclusion", func(t *testing.T) {
		db, sql, _ := dryRunDB(t)

		roomID := uuid.New()
		cand := Candidate{
			RoomID:    &roomID,
			Days:      []string{"FRI"},
			StartTime: &tod,
		}
		_, err := findOverlapping(db, "group_room_id", roomID, cand)
		require.NoError(t, err)

		assert.Contains(t, *sql, "group_room_id = ?")
		assert.Contains(t, *sql, "group_days && ?")
		assert.NotContains(t, *sql, "group_id <>")
	})
}

func TestCheckScheduleConflictsShortCircuits(t *testing.T) {
	teacherID := uuid.New()
	tod, _ := dbtime.Parse("09:00")

	// no days → nothing to compare, the DB is never touched
	recs, err := CheckScheduleConflicts(nil, Candidate{
		TeacherID: &teacherID,
		StartTime: &tod,
	})
	require.NoError(t, err)
	assert.Empty(t, recs)

	// no start time → same
	recs, err = CheckScheduleConflicts(nil, Candidate{
		TeacherID: &teacherID,
		Days:      []string{"MON"},
	})
	require.NoError(t, err)
	assert.Empty(t, recs)

	// neither teacher nor room set → both dimensions skipped
	recs, err = CheckScheduleConflicts(nil, Candidate{
		Days:      []string{"MON"},
		StartTime: &tod,
	})
	require.NoError(t, err)
	assert.Empty(t, recs)
}
