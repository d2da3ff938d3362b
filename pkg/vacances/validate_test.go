package vacances

import (
	"errors"
	"testing"
)

func TestCheckZone(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{name: "zone A", zone: "Zone A"},
		{name: "zone B", zone: "Zone B"},
		{name: "zone C", zone: "Zone C"},
		{name: "zone C with leading space", zone: " Zone C"},
		{name: "unknown zone", zone: "Zone not supported", wantErr: true},
		{name: "lower case", zone: "zone a", wantErr: true},
		{name: "empty", zone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckZone(tt.zone)
			if tt.wantErr {
				if ok {
					t.Errorf("CheckZone(%q) = true, expected false", tt.zone)
				}
				if !errors.Is(err, ErrUnsupportedZone) {
					t.Fatalf("CheckZone(%q) error = %v, expected ErrUnsupportedZone", tt.zone, err)
				}
				var zerr *UnsupportedZoneError
				if !errors.As(err, &zerr) {
					t.Fatalf("error is not an *UnsupportedZoneError: %T", err)
				}
				if zerr.Zone != tt.zone {
					t.Errorf("error carries zone %q, expected %q", zerr.Zone, tt.zone)
				}
				if len(zerr.Supported) != 3 {
					t.Errorf("error carries %d supported zones, expected 3", len(zerr.Supported))
				}
				return
			}
			if err != nil || !ok {
				t.Errorf("CheckZone(%q) = %v, %v; expected true, nil", tt.zone, ok, err)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	for _, name := range SupportedHolidayNames() {
		t.Run(name, func(t *testing.T) {
			ok, err := CheckName(name)
			if err != nil || !ok {
				t.Errorf("CheckName(%q) = %v, %v; expected true, nil", name, ok, err)
			}
		})
	}

	for _, name := range []string{"Name not supported", "vacances d'hiver", "", "Vacances d'Hiver "} {
		t.Run("rejects "+name, func(t *testing.T) {
			ok, err := CheckName(name)
			if ok {
				t.Errorf("CheckName(%q) = true, expected false", name)
			}
			if !errors.Is(err, ErrUnsupportedHolidayName) {
				t.Errorf("CheckName(%q) error = %v, expected ErrUnsupportedHolidayName", name, err)
			}
			if errors.Is(err, ErrUnsupportedZone) {
				t.Error("name error should not match ErrUnsupportedZone")
			}
		})
	}
}

func TestSupportedTablesAreCopies(t *testing.T) {
	zones := SupportedZones()
	zones[0] = "Zone Z"
	if ok, _ := CheckZone("Zone A"); !ok {
		t.Error("mutating SupportedZones() result changed the zone table")
	}

	names := SupportedHolidayNames()
	if len(names) != 6 {
		t.Fatalf("expected 6 holiday names, got %d", len(names))
	}
	names[0] = "Autre"
	if ok, _ := CheckName(Christmas); !ok {
		t.Error("mutating SupportedHolidayNames() result changed the name table")
	}
}

func TestNormalizeZone(t *testing.T) {
	if got := NormalizeZone(" Zone C"); got != ZoneC {
		t.Errorf("NormalizeZone(\" Zone C\") = %q, expected %q", got, ZoneC)
	}
	if got := NormalizeZone("Zone B"); got != ZoneB {
		t.Errorf("NormalizeZone(\"Zone B\") = %q, expected %q", got, ZoneB)
	}
}
