package restserver

import (
	"github.com/chrissnell/vacances/pkg/feries"
	"github.com/chrissnell/vacances/pkg/vacances"
)

// DayEntry is one holiday day for JSON and MessagePack output
type DayEntry struct {
	Date  string `json:"date"`
	ZoneA bool   `json:"vacances_zone_a"`
	ZoneB bool   `json:"vacances_zone_b"`
	ZoneC bool   `json:"vacances_zone_c"`
	Name  string `json:"nom_vacances"`
}

// HolidaysResponse is the body of /holidays/{year}
type HolidaysResponse struct {
	Year  int        `json:"year"`
	Zone  string     `json:"zone,omitempty"`
	Name  string     `json:"name,omitempty"`
	Count int        `json:"count"`
	Days  []DayEntry `json:"days"`
}

// HolidayCheckResponse is the body of /holiday/{date}
type HolidayCheckResponse struct {
	Date    string `json:"date"`
	Zone    string `json:"zone,omitempty"`
	Holiday bool   `json:"holiday"`
}

// PublicHoliday is one public holiday for output
type PublicHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// PublicHolidaysResponse is the body of /public/{year}
type PublicHolidaysResponse struct {
	Year     int             `json:"year"`
	Holidays []PublicHoliday `json:"holidays"`
}

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Endpoint string `json:"endpoint"`
}

func transformDayEntries(h vacances.Holidays) []DayEntry {
	sorted := vacances.Sorted(h)
	days := make([]DayEntry, len(sorted))
	for i, e := range sorted {
		days[i] = DayEntry{
			Date:  e.Date.String(),
			ZoneA: e.ZoneA,
			ZoneB: e.ZoneB,
			ZoneC: e.ZoneC,
			Name:  e.Name,
		}
	}
	return days
}

func transformPublicHolidays(holidays []feries.PublicHoliday) []PublicHoliday {
	out := make([]PublicHoliday, len(holidays))
	for i, p := range holidays {
		out[i] = PublicHoliday{Date: p.Date.String(), Name: p.Name}
	}
	return out
}
