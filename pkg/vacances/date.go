package vacances

import (
	"fmt"
	"time"
	_ "time/tzdata" // Europe/Paris must resolve on hosts without zoneinfo
)

// DateLayout is the layout used for calendar dates in queries and output
const DateLayout = "2006-01-02"

// FranceTimezone is the civil calendar every period is projected onto
const FranceTimezone = "Europe/Paris"

var paris = mustLoadLocation(FranceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("can't load timezone %s: %v", name, err))
	}
	return loc
}

// Paris returns the Europe/Paris location
func Paris() *time.Location {
	return paris
}

// Date is a calendar date without a time of day. It is comparable and
// can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for year, month and day.
// Out-of-range values roll over the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// In returns midnight of d in loc
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n calendar days
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from o to d.
// Computed on UTC midnights so DST transitions never shorten a day.
func (d Date) DaysSince(o Date) int {
	return int(d.In(time.UTC).Sub(o.In(time.UTC)) / (24 * time.Hour))
}

// Before reports whether d is strictly before o
func (d Date) Before(o Date) bool {
	return d.DaysSince(o) < 0
}

// After reports whether d is strictly after o
func (d Date) After(o Date) bool {
	return d.DaysSince(o) > 0
}

// MarshalText implements encoding.TextMarshaler so Date can key JSON objects
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
