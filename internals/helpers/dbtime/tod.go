package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time-of-day value mapped to a Postgres TIME column. It serializes
// as "HH:mm:ss" and accepts "HH:mm" on input.
type Tod struct{ time.Time }

func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = time.Date(0, 1, 1, x.Hour(), x.Minute(), x.Second(), 0, time.UTC)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) String() string {
	return t.Format("15:04:05")
}

func (Tod) GormDataType() string { return "time" }

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

// Equal compares on the clock value only.
func (t Tod) Equal(o Tod) bool {
	return t.Hour() == o.Hour() && t.Minute() == o.Minute() && t.Second() == o.Second()
}
