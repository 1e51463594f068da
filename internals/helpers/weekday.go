package helper

import "strings"

// Weekday tokens as stored in group day sets.
const (
	DayMon = "MON"
	DayTue = "TUE"
	DayWed = "WED"
	DayThu = "THU"
	DayFri = "FRI"
	DaySat = "SAT"
	DaySun = "SUN"
)

// WeekdayOrder is the canonical MON→SUN ordering used when reporting
// day intersections.
var WeekdayOrder = []string{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

var weekdayRank = map[string]int{
	DayMon: 0, DayTue: 1, DayWed: 2, DayThu: 3, DayFri: 4, DaySat: 5, DaySun: 6,
}

func IsValidWeekday(d string) bool {
	_, ok := weekdayRank[d]
	return ok
}

// NormalizeWeekdays uppercases, de-duplicates and canonically orders the
// given tokens. Unknown tokens are dropped.
func NormalizeWeekdays(days []string) []string {
	seen := map[string]bool{}
	for _, d := range days {
		d = strings.ToUpper(strings.TrimSpace(d))
		if IsValidWeekday(d) {
			seen[d] = true
		}
	}
	out := make([]string, 0, len(seen))
	for _, d := range WeekdayOrder {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// IntersectWeekdays returns the shared days of a and b in canonical order.
func IntersectWeekdays(a, b []string) []string {
	inA := map[string]bool{}
	for _, d := range a {
		inA[d] = true
	}
	inBoth := map[string]bool{}
	for _, d := range b {
		if inA[d] {
			inBoth[d] = true
		}
	}
	out := []string{}
	for _, d := range WeekdayOrder {
		if inBoth[d] {
			out = append(out, d)
		}
	}
	return out
}
