package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumanage_backend/internals/features/school/groups/model"
)

func strPtr(s string) *string { return &s }

func TestCreateGroupRequestToModel(t *testing.T) {
	req := CreateGroupRequest{
		GroupName:      "Evening English B1",
		GroupBranchID:  uuid.New(),
		GroupCourseID:  uuid.New(),
		GroupDays:      []string{"fri", "MON", "mon"},
		GroupStartTime: strPtr("19:00"),
		GroupStartDate: strPtr("2026-09-01"),
		GroupEndDate:   strPtr("2026-12-18"),
	}
	req.Normalize()

	m, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, model.GroupPlanned, m.GroupStatus)
	assert.Equal(t, []string{"MON", "FRI"}, []string(m.GroupDays))
	require.NotNil(t, m.GroupStartTime)
	assert.Equal(t, "19:00:00", m.GroupStartTime.String())
	require.NotNil(t, m.GroupStartDate)
	assert.Equal(t, "2026-09-01", m.GroupStartDate.Format("2006-01-02"))
}

func TestCreateGroupRequestStatusOverride(t *testing.T) {
	req := CreateGroupRequest{
		GroupName:     "Ongoing import",
		GroupBranchID: uuid.New(),
		GroupCourseID: uuid.New(),
		GroupDays:     []string{"MON"},
		GroupStatus:   strPtr("ONGOING"),
	}
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.GroupOngoing, m.GroupStatus)
}

func TestCreateGroupRequestDateRange(t *testing.T) {
	base := CreateGroupRequest{
		GroupName:     "Range checks",
		GroupBranchID: uuid.New(),
		GroupCourseID: uuid.New(),
		GroupDays:     []string{"MON"},
	}

	t.Run("end before start", func(t *testing.T) {
		req := base
		req.GroupStartDate = strPtr("2026-10-01")
		req.GroupEndDate = strPtr("2026-09-01")
		_, err := req.ToModel()
		assert.ErrorContains(t, err, "must not be before")
	})

	t.Run("end without start", func(t *testing.T) {
		req := base
		req.GroupEndDate = strPtr("2026-09-01")
		_, err := req.ToModel()
		assert.ErrorContains(t, err, "requires group_start_date")
	})

	t.Run("equal dates allowed", func(t *testing.T) {
		req := base
		req.GroupStartDate = strPtr("2026-09-01")
		req.GroupEndDate = strPtr("2026-09-01")
		_, err := req.ToModel()
		assert.NoError(t, err)
	})

	t.Run("bad time", func(t *testing.T) {
		req := base
		req.GroupStartTime = strPtr("half past nine")
		_, err := req.ToModel()
		assert.ErrorContains(t, err, "group_start_time")
	})
}

func TestPatchGroupRequestApply(t *testing.T) {
	teacherID := uuid.New()
	roomID := uuid.New()
	courseID := uuid.New()

	m := model.GroupModel{
		GroupName:   "before",
		GroupStatus: model.GroupPlanned,
		GroupDays:   []string{"MON"},
	}

	t.Run("schedule fields flag Schedule", func(t *testing.T) {
		g := m
		req := PatchGroupRequest{
			GroupTeacherID: &teacherID,
			GroupRoomID:    &roomID,
			GroupDays:      []string{"wed", "TUE"},
			GroupStartTime: strPtr("10:30"),
		}
		req.Normalize()
		ch, err := req.Apply(&g)
		require.NoError(t, err)

		assert.True(t, ch.Schedule)
		assert.True(t, ch.Teacher)
		assert.True(t, ch.Room)
		assert.False(t, ch.Course)
		assert.Equal(t, []string{"TUE", "WED"}, []string(g.GroupDays))
		require.NotNil(t, g.GroupStartTime)
		assert.Equal(t, "10:30:00", g.GroupStartTime.String())
	})

	t.Run("non-schedule fields leave Schedule unset", func(t *testing.T) {
		g := m
		req := PatchGroupRequest{
			GroupName:     strPtr("after"),
			GroupStatus:   strPtr("COMPLETED"),
			GroupCourseID: &courseID,
		}
		ch, err := req.Apply(&g)
		require.NoError(t, err)

		assert.False(t, ch.Schedule)
		assert.True(t, ch.Course)
		assert.Equal(t, "after", g.GroupName)
		assert.Equal(t, model.GroupCompleted, g.GroupStatus)
	})

	t.Run("absent fields untouched", func(t *testing.T) {
		g := m
		ch, err := PatchGroupRequest{}.Apply(&g)
		require.NoError(t, err)
		assert.Equal(t, PatchChanges{}, ch)
		assert.Equal(t, "before", g.GroupName)
	})

	t.Run("date range enforced against merged state", func(t *testing.T) {
		g := m
		start, err := parseDatePtr(strPtr("2026-10-01"))
		require.NoError(t, err)
		g.GroupStartDate = start

		req := PatchGroupRequest{GroupEndDate: strPtr("2026-09-01")}
		_, err = req.Apply(&g)
		assert.ErrorContains(t, err, "must not be before")
	})
}
