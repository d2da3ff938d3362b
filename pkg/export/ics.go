package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chrissnell/vacances/pkg/feries"
	"github.com/chrissnell/vacances/pkg/vacances"
	"github.com/google/uuid"
)

// ICS constants
const (
	DefaultProductID = "-//vacances//Calendrier Scolaire//FR"
	icsDateLayout    = "20060102"
	icsStampLayout   = "20060102T150405Z"
	icsMaxLineOctets = 75
)

// uidNamespace scopes the name-based UUIDs used as event UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://data.education.gouv.fr/fr-en-calendrier-scolaire"))

// Calendar is what WriteICS renders
type Calendar struct {
	Name      string
	ProductID string
	Holidays  vacances.Holidays
	Public    []feries.PublicHoliday

	// Stamp is written as DTSTAMP; zero means now
	Stamp time.Time
}

var textEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// EventUID returns the stable UID of a run. The same run always gets the
// same UID so subscribed calendars update events in place.
func EventUID(r Run) string {
	key := strings.Join([]string{r.Start.String(), r.End.String(), r.Entry.Name, strings.Join(r.Entry.Zones(), "+")}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@vacances"
}

func publicUID(p feries.PublicHoliday) string {
	return uuid.NewSHA1(uidNamespace, []byte("ferie|"+p.Date.String()+"|"+p.Name)).String() + "@vacances"
}

// Summary is the event title of a run, e.g. "Vacances d'Hiver (Zone A)"
func Summary(r Run) string {
	zones := r.Entry.Zones()
	if len(zones) == 0 {
		return r.Entry.Name
	}
	return fmt.Sprintf("%s (%s)", r.Entry.Name, strings.Join(zones, ", "))
}

type icsWriter struct {
	w   *bufio.Writer
	err error
}

// line writes one content line, folded at 75 octets with CRLF endings
func (iw *icsWriter) line(s string) {
	if iw.err != nil {
		return
	}
	first := true
	for len(s) > 0 {
		limit := icsMaxLineOctets
		if !first {
			limit-- // leading space of the continuation line
		}
		cut := len(s)
		if cut > limit {
			cut = limit
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
		}
		if !first {
			_, iw.err = iw.w.WriteString(" ")
		}
		if iw.err == nil {
			_, iw.err = iw.w.WriteString(s[:cut] + "\r\n")
		}
		if iw.err != nil {
			return
		}
		s = s[cut:]
		first = false
	}
}

func (iw *icsWriter) linef(format string, args ...any) {
	iw.line(fmt.Sprintf(format, args...))
}

// WriteICS writes an iCalendar subscription feed: one all-day event per
// run of holiday days plus one per public holiday.
func WriteICS(w io.Writer, c Calendar) error {
	iw := &icsWriter{w: bufio.NewWriter(w)}

	productID := c.ProductID
	if productID == "" {
		productID = DefaultProductID
	}
	stamp := c.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	dtstamp := stamp.UTC().Format(icsStampLayout)

	iw.line("BEGIN:VCALENDAR")
	iw.line("VERSION:2.0")
	iw.linef("PRODID:%s", productID)
	iw.line("CALSCALE:GREGORIAN")
	iw.line("METHOD:PUBLISH")
	if c.Name != "" {
		iw.linef("X-WR-CALNAME:%s", textEscaper.Replace(c.Name))
	}
	iw.linef("X-WR-TIMEZONE:%s", vacances.FranceTimezone)
	iw.line("X-PUBLISHED-TTL:PT12H")

	for _, r := range Runs(c.Holidays) {
		iw.line("BEGIN:VEVENT")
		iw.linef("UID:%s", EventUID(r))
		iw.linef("DTSTAMP:%s", dtstamp)
		iw.linef("DTSTART;VALUE=DATE:%s", r.Start.In(time.UTC).Format(icsDateLayout))
		iw.linef("DTEND;VALUE=DATE:%s", r.End.In(time.UTC).Format(icsDateLayout))
		iw.linef("SUMMARY:%s", textEscaper.Replace(Summary(r)))
		iw.linef("CATEGORIES:%s", "Vacances scolaires")
		iw.line("TRANSP:TRANSPARENT")
		iw.line("END:VEVENT")
	}

	for _, p := range c.Public {
		iw.line("BEGIN:VEVENT")
		iw.linef("UID:%s", publicUID(p))
		iw.linef("DTSTAMP:%s", dtstamp)
		iw.linef("DTSTART;VALUE=DATE:%s", p.Date.In(time.UTC).Format(icsDateLayout))
		iw.linef("DTEND;VALUE=DATE:%s", p.Date.AddDays(1).In(time.UTC).Format(icsDateLayout))
		iw.linef("SUMMARY:%s", textEscaper.Replace(p.Name))
		iw.linef("CATEGORIES:%s", "Jour férié")
		iw.line("TRANSP:TRANSPARENT")
		iw.line("END:VEVENT")
	}

	iw.line("END:VCALENDAR")

	if iw.err != nil {
		return fmt.Errorf("error writing ICS: %w", iw.err)
	}
	return iw.w.Flush()
}
