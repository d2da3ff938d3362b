// Package export writes expanded school holidays in formats calendar
// applications and spreadsheets understand.
package export

import (
	"github.com/chrissnell/vacances/pkg/vacances"
)

// Run is a stretch of consecutive days sharing the same holiday name and zone flags.
// End is exclusive.
type Run struct {
	Start vacances.Date
	End   vacances.Date
	Entry vacances.DayEntry
}

// Days returns the number of days in the run
func (r Run) Days() int {
	return r.End.DaysSince(r.Start)
}

func sameRun(a, b vacances.DayEntry) bool {
	return a.Name == b.Name && a.ZoneA == b.ZoneA && a.ZoneB == b.ZoneB && a.ZoneC == b.ZoneC
}

// Runs groups the day entries into runs, ordered by start date
func Runs(h vacances.Holidays) []Run {
	var runs []Run
	for _, e := range vacances.Sorted(h) {
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.End == e.Date && sameRun(last.Entry, e) {
				last.End = e.Date.AddDays(1)
				continue
			}
		}
		runs = append(runs, Run{Start: e.Date, End: e.Date.AddDays(1), Entry: e})
	}
	return runs
}
