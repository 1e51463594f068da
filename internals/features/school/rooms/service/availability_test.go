package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groupModel "edumanage_backend/internals/features/school/groups/model"
	"edumanage_backend/internals/helpers/dbtime"
)

func occupying(days []string, start string) groupModel.GroupModel {
	g := groupModel.GroupModel{GroupDays: pq.StringArray(days)}
	if start != "" {
		tod, _ := dbtime.Parse(start)
		g.GroupStartTime = &tod
	}
	return g
}

func TestBuildOccupied(t *testing.T) {
	occ := BuildOccupied([]groupModel.GroupModel{
		occupying([]string{"MON", "WED"}, "09:00:00"),
		occupying([]string{"MON"}, "14:00:00"),
		occupying([]string{"FRI"}, ""), // no start time occupies nothing
	})

	assert.True(t, occ["MON"]["09:00:00"])
	assert.True(t, occ["MON"]["14:00:00"])
	assert.True(t, occ["WED"]["09:00:00"])
	assert.False(t, occ["WED"]["14:00:00"])
	assert.Nil(t, occ["FRI"])
}

func TestOpenSlots(t *testing.T) {
	occ := BuildOccupied([]groupModel.GroupModel{
		occupying([]string{"MON"}, "09:00:00"),
		occupying([]string{"MON"}, "10:00:00"),
	})

	open := OpenSlots([]string{"MON", "TUE"}, occ)

	require.Len(t, open["MON"], len(BusinessHourSlots)-2)
	assert.NotContains(t, open["MON"], "09:00:00")
	assert.NotContains(t, open["MON"], "10:00:00")
	assert.Contains(t, open["MON"], "08:00:00")
	assert.Contains(t, open["MON"], "18:00:00")

	// untouched day offers the full slot set
	assert.Equal(t, BusinessHourSlots, open["TUE"])
}

func TestOpenSlotsFullyBooked(t *testing.T) {
	groups := make([]groupModel.GroupModel, 0, len(BusinessHourSlots))
	for _, slot := range BusinessHourSlots {
		groups = append(groups, occupying([]string{"SAT"}, slot))
	}
	open := OpenSlots([]string{"SAT"}, BuildOccupied(groups))
	assert.Empty(t, open["SAT"])
}
