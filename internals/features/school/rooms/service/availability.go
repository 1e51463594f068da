package service

import (
	groupModel "edumanage_backend/internals/features/school/groups/model"
)

// BusinessHourSlots is the fixed enumerated slot set offered when a room is
// unavailable: hourly starts from 08:00 through 18:00.
var BusinessHourSlots = []string{
	"08:00:00", "09:00:00", "10:00:00", "11:00:00", "12:00:00",
	"13:00:00", "14:00:00", "15:00:00", "16:00:00", "17:00:00", "18:00:00",
}

// BuildOccupied maps (day, start time) pairs taken by the given groups.
// Groups without a start time occupy nothing.
func BuildOccupied(groups []groupModel.GroupModel) map[string]map[string]bool {
	occ := map[string]map[string]bool{}
	for _, g := range groups {
		if g.GroupStartTime == nil {
			continue
		}
		slot := g.GroupStartTime.String()
		for _, d := range g.GroupDays {
			if occ[d] == nil {
				occ[d] = map[string]bool{}
			}
			occ[d][slot] = true
		}
	}
	return occ
}

// OpenSlots returns, per requested day, every business-hour slot not already
// occupied. The slot set is small and static, so an exhaustive scan is all
// that is needed.
func OpenSlots(days []string, occupied map[string]map[string]bool) map[string][]string {
	out := make(map[string][]string, len(days))
	for _, d := range days {
		open := make([]string, 0, len(BusinessHourSlots))
		for _, slot := range BusinessHourSlots {
			if !occupied[d][slot] {
				open = append(open, slot)
			}
		}
		out[d] = open
	}
	return out
}
