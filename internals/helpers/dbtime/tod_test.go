package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00:00", "09:00:00", false},
		{"09:00", "09:00:00", false},
		{" 14:30 ", "14:30:00", false},
		{"23:59:59", "23:59:59", false},
		{"25:00", "", true},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tod, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tod.String())
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("10:00")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"10:00:00"`, string(b))

	var back Tod
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, tod.Equal(back))
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("08:00:00"))
	assert.Equal(t, "08:00:00", tod.String())

	require.NoError(t, tod.Scan([]byte("18:00")))
	assert.Equal(t, "18:00:00", tod.String())

	require.NoError(t, tod.Scan(time.Date(2026, 3, 1, 7, 45, 30, 0, time.UTC)))
	assert.Equal(t, "07:45:30", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.Error(t, tod.Scan(42))
}

func TestValue(t *testing.T) {
	tod, err := Parse("16:15:00")
	require.NoError(t, err)
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "16:15:00", v)
}

func TestEqual(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("09:00:00")
	c, _ := Parse("09:01")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
