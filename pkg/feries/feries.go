// Package feries lists the French public holidays (jours fériés) so that
// calendar output can show them next to the school holidays.
package feries

import (
	"sort"
	"time"

	"github.com/chrissnell/vacances/pkg/vacances"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fr"
)

// PublicHoliday is one public holiday on a given date
type PublicHoliday struct {
	Date vacances.Date `json:"date"`
	Name string        `json:"name"`
}

var calendar = newCalendar()

func newCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(fr.Holidays...)
	return c
}

// ForYear returns the public holidays of year ordered by date
func ForYear(year int) []PublicHoliday {
	var out []PublicHoliday
	for _, h := range fr.Holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		out = append(out, PublicHoliday{Date: vacances.DateOf(actual), Name: h.Name})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// IsPublicHoliday reports whether d is a public holiday and its name
func IsPublicHoliday(d vacances.Date) (bool, string) {
	// Noon keeps the date stable whatever zone the calendar evaluates in
	actual, _, h := calendar.IsHoliday(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC))
	if !actual || h == nil {
		return false, ""
	}
	return true, h.Name
}

// Index returns the public holidays of year keyed by date
func Index(year int) map[vacances.Date]string {
	idx := make(map[vacances.Date]string)
	for _, h := range ForYear(year) {
		idx[h.Date] = h.Name
	}
	return idx
}
