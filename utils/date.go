package utils

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CustomDate is a calendar day without a time part, stored and serialised as YYYY-MM-DD.
type CustomDate struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) CustomDate {
	return CustomDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (CustomDate, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return CustomDate{t}, nil
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == `null` || str == `""` {
		*d = CustomDate{}
		return nil
	}
	str = strings.Trim(str, `"`)

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = CustomDate{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
	return nil
}

func (d *CustomDate) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// SameDay reports whether t falls on d in t's location.
func (d CustomDate) SameDay(t time.Time) bool {
	y, m, day := t.Date()
	return d.Year() == y && d.Month() == m && d.Day() == day
}
