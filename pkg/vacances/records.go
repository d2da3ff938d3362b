package vacances

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for a 200 response whose body is not UTF-8 text
var ErrInvalidUTF8 = errors.New("holiday dataset response body is not valid UTF-8")

// HolidayPeriod is one record of the dataset: a named break for one zone
type HolidayPeriod struct {
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Zones       string `json:"zones"`
	SchoolYear  string `json:"annee_scolaire,omitempty"`
	Population  string `json:"population,omitempty"`
	Location    string `json:"location,omitempty"`
}

// DayEntry is the per-day projection of the holiday periods
type DayEntry struct {
	Date  Date   `json:"date"`
	ZoneA bool   `json:"vacances_zone_a"`
	ZoneB bool   `json:"vacances_zone_b"`
	ZoneC bool   `json:"vacances_zone_c"`
	Name  string `json:"nom_vacances"`
}

// Zones returns the zones flagged on the entry
func (e DayEntry) Zones() []string {
	var zones []string
	if e.ZoneA {
		zones = append(zones, ZoneA)
	}
	if e.ZoneB {
		zones = append(zones, ZoneB)
	}
	if e.ZoneC {
		zones = append(zones, ZoneC)
	}
	return zones
}

// Holidays maps each holiday day to its entry
type Holidays map[Date]DayEntry

// Sorted returns the entries ordered by date
func Sorted(h Holidays) []DayEntry {
	entries := make([]DayEntry, 0, len(h))
	for _, e := range h {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// ParseResponse decodes a dataset response into day entries.
// Any status other than 200 yields an empty map and no error: the dataset
// answering with an error page is treated as "no holidays", not a failure.
// A malformed body on a 200 returns the JSON decoder's error as is, and a
// body that is not UTF-8 returns ErrInvalidUTF8.
func ParseResponse(resp *Response) (Holidays, error) {
	if resp == nil || resp.StatusCode != http.StatusOK {
		return Holidays{}, nil
	}

	// json.Unmarshal would silently replace invalid bytes with U+FFFD
	if !utf8.Valid(resp.Body) {
		return nil, ErrInvalidUTF8
	}

	var periods []HolidayPeriod
	if err := json.Unmarshal(resp.Body, &periods); err != nil {
		return nil, err
	}

	return Expand(periods)
}
