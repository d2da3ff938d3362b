package vacances

import (
	"testing"
)

func TestExpand(t *testing.T) {
	periods := []HolidayPeriod{
		{
			Description: Winter,
			StartDate:   "2023-02-03T23:00:00+00:00",
			EndDate:     "2023-02-06T23:00:00+00:00",
			SchoolYear:  "2022-2023",
			Zones:       ZoneA,
		},
		{
			Description: Spring,
			StartDate:   "2023-04-14T22:00:00+00:00",
			EndDate:     "2023-04-18T22:00:00+00:00",
			Zones:       ZoneB,
			SchoolYear:  "2022-2023",
		},
	}

	expected := Holidays{
		NewDate(2023, 2, 4):  {Date: NewDate(2023, 2, 4), ZoneA: true, Name: Winter},
		NewDate(2023, 2, 5):  {Date: NewDate(2023, 2, 5), ZoneA: true, Name: Winter},
		NewDate(2023, 2, 6):  {Date: NewDate(2023, 2, 6), ZoneA: true, Name: Winter},
		NewDate(2023, 4, 15): {Date: NewDate(2023, 4, 15), ZoneB: true, Name: Spring},
		NewDate(2023, 4, 16): {Date: NewDate(2023, 4, 16), ZoneB: true, Name: Spring},
		NewDate(2023, 4, 17): {Date: NewDate(2023, 4, 17), ZoneB: true, Name: Spring},
		NewDate(2023, 4, 18): {Date: NewDate(2023, 4, 18), ZoneB: true, Name: Spring},
	}

	got, err := Expand(periods)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	if len(got) != len(expected) {
		t.Fatalf("Expand() returned %d entries, expected %d", len(got), len(expected))
	}
	for date, want := range expected {
		entry, ok := got[date]
		if !ok {
			t.Errorf("missing entry for %s", date)
			continue
		}
		if entry != want {
			t.Errorf("entry for %s = %+v, expected %+v", date, entry, want)
		}
	}

	// The end date's own day is excluded
	if _, ok := got[NewDate(2023, 2, 7)]; ok {
		t.Error("2023-02-07 should not be a holiday day")
	}
}

func TestExpandAcrossDST(t *testing.T) {
	// Paris switches to CEST on 2023-03-26; start is +01:00, end is +02:00
	periods := []HolidayPeriod{{
		Description: Spring,
		StartDate:   "2023-03-25T23:00:00+00:00",
		EndDate:     "2023-03-27T22:00:00+00:00",
		Zones:       ZoneC,
	}}

	got, err := Expand(periods)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), Sorted(got))
	}
	for _, d := range []Date{NewDate(2023, 3, 26), NewDate(2023, 3, 27)} {
		if e, ok := got[d]; !ok || !e.ZoneC || e.ZoneA || e.ZoneB {
			t.Errorf("entry for %s = %+v, %v", d, e, ok)
		}
	}
}

func TestExpandUsesParisCalendarNotUTC(t *testing.T) {
	// 23:30 UTC on Dec 31 is already Jan 1 in Paris
	periods := []HolidayPeriod{{
		Description: Christmas,
		StartDate:   "2023-12-31T23:30:00+00:00",
		EndDate:     "2024-01-01T23:30:00+00:00",
		Zones:       ZoneB,
	}}

	got, err := Expand(periods)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if _, ok := got[NewDate(2024, 1, 1)]; !ok || len(got) != 1 {
		t.Errorf("expected only 2024-01-01, got %v", Sorted(got))
	}
}

func TestExpandDisjointPeriodsAddUp(t *testing.T) {
	first := []HolidayPeriod{{
		Description: AllSaints,
		StartDate:   "2023-10-20T22:00:00+00:00",
		EndDate:     "2023-11-05T23:00:00+00:00",
		Zones:       ZoneA,
	}}
	second := []HolidayPeriod{{
		Description: Christmas,
		StartDate:   "2023-12-22T23:00:00+00:00",
		EndDate:     "2024-01-07T23:00:00+00:00",
		Zones:       ZoneB,
	}}

	a, err := Expand(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Expand(second)
	if err != nil {
		t.Fatal(err)
	}
	both, err := Expand(append(first, second...))
	if err != nil {
		t.Fatal(err)
	}

	if len(both) != len(a)+len(b) {
		t.Errorf("combined size %d, expected %d + %d", len(both), len(a), len(b))
	}
	if len(a) != 16 || len(b) != 16 {
		t.Errorf("expected 16 days each, got %d and %d", len(a), len(b))
	}
}

func TestExpandLastPeriodWins(t *testing.T) {
	periods := []HolidayPeriod{
		{
			Description: Winter,
			StartDate:   "2024-02-09T23:00:00+00:00",
			EndDate:     "2024-02-25T23:00:00+00:00",
			Zones:       ZoneC,
		},
		{
			Description: Winter,
			StartDate:   "2024-02-16T23:00:00+00:00",
			EndDate:     "2024-03-03T23:00:00+00:00",
			Zones:       ZoneA,
		},
	}

	got, err := Expand(periods)
	if err != nil {
		t.Fatal(err)
	}

	overlap := got[NewDate(2024, 2, 20)]
	if !overlap.ZoneA || overlap.ZoneC {
		t.Errorf("overlapping day should carry only the later period's zone, got %+v", overlap)
	}
	early := got[NewDate(2024, 2, 12)]
	if !early.ZoneC || early.ZoneA {
		t.Errorf("day covered only by the first period should keep zone C, got %+v", early)
	}
}

func TestExpandZoneFlagsUseExactEquality(t *testing.T) {
	got, err := Expand([]HolidayPeriod{{
		Description: Summer,
		StartDate:   "2024-07-05T22:00:00+00:00",
		EndDate:     "2024-07-06T22:00:00+00:00",
		Zones:       " Zone C",
	}})
	if err != nil {
		t.Fatal(err)
	}
	e := got[NewDate(2024, 7, 6)]
	if e.ZoneA || e.ZoneB || e.ZoneC {
		t.Errorf("a zones value that is not an exact match should set no flag, got %+v", e)
	}
	if e.Name != Summer {
		t.Errorf("Name = %q, expected %q", e.Name, Summer)
	}
}

func TestExpandEmptyAndInverted(t *testing.T) {
	got, err := Expand(nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("Expand(nil) = %v, %v; expected empty map", got, err)
	}

	got, err = Expand([]HolidayPeriod{{
		Description: AscensionBridge,
		StartDate:   "2024-05-10T22:00:00+00:00",
		EndDate:     "2024-05-08T22:00:00+00:00",
		Zones:       ZoneA,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("inverted period should produce no entries, got %d", len(got))
	}
}

func TestExpandBadTimestamp(t *testing.T) {
	_, err := Expand([]HolidayPeriod{{
		Description: Winter,
		StartDate:   "not a date",
		EndDate:     "2024-02-25T23:00:00+00:00",
		Zones:       ZoneA,
	}})
	if err == nil {
		t.Fatal("expected an error for an unparseable start_date")
	}
}

func TestExpandAcceptsTimestampsWithoutOffset(t *testing.T) {
	got, err := Expand([]HolidayPeriod{{
		Description: Winter,
		StartDate:   "2023-02-04T00:00:00",
		EndDate:     "2023-02-07T00:00:00.000",
		Zones:       ZoneA,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 days, got %d", len(got))
	}
	for _, d := range []Date{NewDate(2023, 2, 4), NewDate(2023, 2, 6)} {
		if e, ok := got[d]; !ok || !e.ZoneA {
			t.Errorf("%s: expected a zone A entry, got %+v", d, e)
		}
	}
}

func TestExpandAcceptsBareDates(t *testing.T) {
	got, err := Expand([]HolidayPeriod{{
		Description: AscensionBridge,
		StartDate:   "2024-05-09",
		EndDate:     "2024-05-13",
		Zones:       ZoneB,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("expected 4 days, got %d", len(got))
	}
}
