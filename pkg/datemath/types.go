package datemath

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date is a concrete calendar day with no time-of-day or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.In(time.UTC).Before(o.In(time.UTC))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return d.In(time.UTC).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	*c = ClockTime{Hour: t.Hour(), Minute: t.Minute()}
	return nil
}

// ParsedDateTime is the outcome of a successful resolution.
type ParsedDateTime struct {
	Date          Date       `json:"date"`
	Time          *ClockTime `json:"time,omitempty"`
	Confidence    float64    `json:"confidence"`
	OriginalInput string     `json:"original_input"`
	Rule          string     `json:"rule"`
}

// At combines the date and optional time into an instant in loc.
// Without a time the result is midnight.
func (p ParsedDateTime) At(loc *time.Location) time.Time {
	if p.Time == nil {
		return p.Date.In(loc)
	}
	return time.Date(p.Date.Year, p.Date.Month, p.Date.Day, p.Time.Hour, p.Time.Minute, 0, 0, loc)
}

// ParseResult holds the result of parsing a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}
