package vacances

import (
	"fmt"
	"time"
)

// Expand turns periods into one entry per holiday day. Both bounds are
// converted to the Europe/Paris calendar; the end date's own day is not
// part of the period. When two periods cover the same day the one that
// comes later in periods replaces the earlier entry.
func Expand(periods []HolidayPeriod) (Holidays, error) {
	holidays := make(Holidays)

	for i, p := range periods {
		start, err := parisDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): start_date: %w", i, p.Description, err)
		}
		end, err := parisDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): end_date: %w", i, p.Description, err)
		}

		days := end.DaysSince(start)
		for offset := 0; offset < days; offset++ {
			day := start.AddDays(offset)
			holidays[day] = DayEntry{
				Date:  day,
				ZoneA: p.Zones == ZoneA,
				ZoneB: p.Zones == ZoneB,
				ZoneC: p.Zones == ZoneC,
				Name:  p.Description,
			}
		}
	}

	return holidays, nil
}

// localTimestampLayout is an ISO 8601 timestamp without an offset
const localTimestampLayout = "2006-01-02T15:04:05"

// parisDate returns the Europe/Paris calendar date of an RFC 3339
// timestamp. Bare YYYY-MM-DD values and timestamps without an offset are
// taken as Paris local time.
func parisDate(value string) (Date, error) {
	if len(value) == len(DateLayout) {
		return ParseDate(value)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		local, localErr := time.ParseInLocation(localTimestampLayout, value, paris)
		if localErr != nil {
			return Date{}, err
		}
		t = local
	}
	return DateOf(t.In(paris)), nil
}
