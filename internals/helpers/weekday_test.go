package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWeekdays(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"canonical order", []string{"FRI", "MON", "WED"}, []string{"MON", "WED", "FRI"}},
		{"lowercase and spaces", []string{" mon ", "tue"}, []string{"MON", "TUE"}},
		{"duplicates collapse", []string{"MON", "MON", "SUN"}, []string{"MON", "SUN"}},
		{"unknown tokens dropped", []string{"MON", "FOO", ""}, []string{"MON"}},
		{"empty input", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWeekdays(tt.in))
		})
	}
}

func TestIntersectWeekdays(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"shared subset in order", []string{"FRI", "MON"}, []string{"MON", "WED", "FRI"}, []string{"MON", "FRI"}},
		{"no overlap", []string{"MON"}, []string{"TUE"}, []string{}},
		{"identical", []string{"SAT", "SUN"}, []string{"SUN", "SAT"}, []string{"SAT", "SUN"}},
		{"empty side", nil, []string{"MON"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntersectWeekdays(tt.a, tt.b))
		})
	}
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday("MON"))
	assert.True(t, IsValidWeekday("SUN"))
	assert.False(t, IsValidWeekday("mon"))
	assert.False(t, IsValidWeekday("MONDAY"))
	assert.False(t, IsValidWeekday(""))
}
