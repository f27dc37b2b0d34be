package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")
)

// Date is a calendar day without a time of day or location.
//
// It is always stored as midnight UTC so that two Dates for the same
// calendar day compare equal regardless of where they were created.
type Date time.Time

// NewDate returns the Date for the given year, month and day. Values
// outside their usual ranges are normalized like time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

// CalendarMonth returns the Month the day belongs to.
func (d Date) CalendarMonth() Month {
	return NewMonth(d.Year(), d.Month())
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

// SameDayNextMonth returns the same day of month in the following month.
// If that month is shorter, the result is its last day, e.g. January 31st
// becomes the last day of February.
func (d Date) SameDayNextMonth() Date {
	next := d.CalendarMonth().Next()
	last := next.LastDay()
	if d.Day() > last.Day() {
		return last
	}

	return NewDate(next.Year(), next.Month(), d.Day())
}

// DaysUntil returns the number of days from d to o. It is negative if o
// is before d.
func (d Date) DaysUntil(o Date) int {
	// Dates are midnight UTC. time.Duration cannot hold more than ~292 years.
	return int((time.Time(o).Unix() - time.Time(d).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func (d Date) Before(o Date) bool {
	return time.Time(d).Before(time.Time(o))
}

func (d Date) After(o Date) bool {
	return time.Time(d).After(time.Time(o))
}

func (d Date) Equal(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month() && d.Day() == o.Day()
}

// Between reports whether d lies in the closed interval [from, until].
func (d Date) Between(from, until Date) bool {
	return !d.Before(from) && !d.After(until)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and RFC3339 timestamps. For timestamps,
// the calendar day in the timestamp's own offset is used.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		t, err := time.Parse(layout, value)
		if err == nil {
			*d = DateOf(t)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// UnmarshalParam implements gin's BindUnmarshaler for query parameters.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	t, valid, err := scanTime(value)
	if err != nil {
		return err
	}

	if !valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(t)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// scanTime reads a time from a database value. The SQLite driver returns
// time.Time for date columns, but text written by other tools is parsed
// as well.
func scanTime(value any) (time.Time, bool, error) {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		nullTime := &sql.NullTime{}
		if err := nullTime.Scan(value); err != nil {
			return time.Time{}, false, err
		}
		return nullTime.Time.UTC(), nullTime.Valid, nil
	}

	for _, layout := range []string{"2006-01-02 15:04:05.999999999-07:00", time.RFC3339Nano, time.DateOnly} {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t.UTC(), true, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}
