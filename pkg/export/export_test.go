package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/chrissnell/vacances/pkg/feries"
	"github.com/chrissnell/vacances/pkg/vacances"
)

func winterBreak() vacances.Holidays {
	h := vacances.Holidays{}
	start := vacances.NewDate(2023, time.February, 4)
	for i := 0; i < 16; i++ {
		d := start.AddDays(i)
		h[d] = vacances.DayEntry{Date: d, ZoneA: true, Name: vacances.Winter}
	}
	d := vacances.NewDate(2023, time.May, 18)
	h[d] = vacances.DayEntry{Date: d, ZoneA: true, ZoneB: true, ZoneC: true, Name: vacances.AscensionBridge}
	return h
}

func TestRuns(t *testing.T) {
	runs := Runs(winterBreak())
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Start != vacances.NewDate(2023, time.February, 4) || runs[0].End != vacances.NewDate(2023, time.February, 20) {
		t.Errorf("unexpected first run %s..%s", runs[0].Start, runs[0].End)
	}
	if runs[0].Days() != 16 {
		t.Errorf("expected 16 days, got %d", runs[0].Days())
	}
	if runs[1].Days() != 1 || runs[1].Entry.Name != vacances.AscensionBridge {
		t.Errorf("unexpected second run %+v", runs[1])
	}
}

func TestRunsSplitOnZoneChange(t *testing.T) {
	h := vacances.Holidays{}
	a := vacances.NewDate(2023, time.April, 15)
	b := a.AddDays(1)
	h[a] = vacances.DayEntry{Date: a, ZoneA: true, Name: vacances.Spring}
	h[b] = vacances.DayEntry{Date: b, ZoneB: true, Name: vacances.Spring}

	if runs := Runs(h); len(runs) != 2 {
		t.Errorf("expected a zone change to split the run, got %d runs", len(runs))
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, Calendar{
		Name:     "Vacances scolaires 2023, Zone A",
		Holidays: winterBreak(),
		Public:   []feries.PublicHoliday{{Date: vacances.NewDate(2023, time.July, 14), Name: "Fête nationale"}},
		Stamp:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"METHOD:PUBLISH\r\n",
		"PRODID:" + DefaultProductID + "\r\n",
		"X-WR-CALNAME:Vacances scolaires 2023\\, Zone A\r\n",
		"X-WR-TIMEZONE:Europe/Paris\r\n",
		"DTSTAMP:20230101T000000Z\r\n",
		"DTSTART;VALUE=DATE:20230204\r\n",
		"DTEND;VALUE=DATE:20230220\r\n",
		"SUMMARY:Vacances d'Hiver (Zone A)\r\n",
		"DTSTART;VALUE=DATE:20230518\r\n",
		"DTEND;VALUE=DATE:20230519\r\n",
		"SUMMARY:Pont de l'Ascension (Zone A\\, Zone B\\, Zone C)\r\n",
		"SUMMARY:Fête nationale\r\n",
		"DTSTART;VALUE=DATE:20230714\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}

	if n := strings.Count(out, "BEGIN:VEVENT"); n != 3 {
		t.Errorf("expected 3 events, got %d", n)
	}
}

func TestWriteICSFoldsLongLines(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, Calendar{Name: strings.Repeat("é", 60)})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		if len(line) > icsMaxLineOctets {
			t.Errorf("line of %d octets not folded: %q", len(line), line)
		}
		if !utf8.ValidString(line) {
			t.Errorf("folding split a rune: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "\r\n ") {
		t.Error("expected a continuation line")
	}
}

func TestWriteICSFoldsStrayContinuationBytes(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, Calendar{Name: strings.Repeat("\x80", 200)})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		if len(line) > icsMaxLineOctets {
			t.Errorf("line of %d octets not folded: %q", len(line), line)
		}
	}
	if !strings.Contains(buf.String(), "END:VCALENDAR") {
		t.Error("feed was not completed")
	}
}

func TestEventUIDStable(t *testing.T) {
	runs := Runs(winterBreak())
	if EventUID(runs[0]) != EventUID(Runs(winterBreak())[0]) {
		t.Error("the same run should always get the same UID")
	}
	if EventUID(runs[0]) == EventUID(runs[1]) {
		t.Error("different runs should get different UIDs")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, winterBreak()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 18 {
		t.Fatalf("expected header plus 17 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,vacances_zone_a,vacances_zone_b,vacances_zone_c,nom_vacances" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "2023-02-04,true,false,false,Vacances d'Hiver" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[17] != "2023-05-18,true,true,true,Pont de l'Ascension" {
		t.Errorf("unexpected last row %q", lines[17])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, winterBreak()); err != nil {
		t.Fatal(err)
	}
	var entries []vacances.DayEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 17 {
		t.Fatalf("expected 17 entries, got %d", len(entries))
	}
	if entries[0].Date != vacances.NewDate(2023, time.February, 4) {
		t.Errorf("entries not sorted, first is %s", entries[0].Date)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vacances.db")

	if err := WriteSQLite(ctx, path, winterBreak()); err != nil {
		t.Fatal(err)
	}

	// Writing again overwrites instead of failing on the primary key
	d := vacances.NewDate(2023, time.February, 4)
	if err := WriteSQLite(ctx, path, vacances.Holidays{d: {Date: d, ZoneB: true, Name: vacances.Winter}}); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 17 {
		t.Fatalf("expected 17 rows, got %d", len(got))
	}
	if e := got[d]; e.ZoneA || !e.ZoneB || e.Name != vacances.Winter {
		t.Errorf("upsert did not overwrite the row: %+v", e)
	}
	bridge := got[vacances.NewDate(2023, time.May, 18)]
	if !bridge.ZoneA || !bridge.ZoneB || !bridge.ZoneC {
		t.Errorf("zone flags lost: %+v", bridge)
	}
}

func TestSQLiteZoneView(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vacances.db")
	if err := WriteSQLite(ctx, path, winterBreak()); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var zoneA, zoneC int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM school_holidays_by_zone WHERE zone = 'Zone A'`).Scan(&zoneA); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM school_holidays_by_zone WHERE zone = 'Zone C'`).Scan(&zoneC); err != nil {
		t.Fatal(err)
	}
	if zoneA != 17 || zoneC != 1 {
		t.Errorf("zone view counts A=%d C=%d, expected 17 and 1", zoneA, zoneC)
	}
}
