package vacances

import (
	"errors"
	"fmt"
	"strings"
)

// Zones as spelled in the dataset's "zones" field
const (
	ZoneA = "Zone A"
	ZoneB = "Zone B"
	ZoneC = "Zone C"
)

// Holiday period names as spelled in the dataset's "description" field
const (
	Christmas       = "Vacances de Noël"
	Winter          = "Vacances d'Hiver"
	Spring          = "Vacances de Printemps"
	Summer          = "Vacances d'Été"
	AllSaints       = "Vacances de la Toussaint"
	AscensionBridge = "Pont de l'Ascension"
)

var supportedZones = [...]string{ZoneA, ZoneB, ZoneC}

var supportedHolidayNames = [...]string{
	Christmas,
	Winter,
	Spring,
	Summer,
	AllSaints,
	AscensionBridge,
}

var (
	// ErrUnsupportedZone matches any *UnsupportedZoneError
	ErrUnsupportedZone = errors.New("unsupported zone")
	// ErrUnsupportedHolidayName matches any *UnsupportedHolidayNameError
	ErrUnsupportedHolidayName = errors.New("unsupported holiday name")
	// ErrInvalidDate matches any *InvalidDateError
	ErrInvalidDate = errors.New("invalid date argument")
)

// UnsupportedZoneError is returned when a zone is not one of SupportedZones
type UnsupportedZoneError struct {
	Zone      string
	Supported []string
}

func (e *UnsupportedZoneError) Error() string {
	return fmt.Sprintf("unsupported zone: '%s'. Must be in %q", e.Zone, e.Supported)
}

func (e *UnsupportedZoneError) Is(target error) bool {
	return target == ErrUnsupportedZone
}

// UnsupportedHolidayNameError is returned when a name is not one of SupportedHolidayNames
type UnsupportedHolidayNameError struct {
	Name      string
	Supported []string
}

func (e *UnsupportedHolidayNameError) Error() string {
	return fmt.Sprintf("unknown holiday name: '%s'. Must be in %q", e.Name, e.Supported)
}

func (e *UnsupportedHolidayNameError) Is(target error) bool {
	return target == ErrUnsupportedHolidayName
}

// SupportedZones returns a copy of the zone table
func SupportedZones() []string {
	return append([]string(nil), supportedZones[:]...)
}

// SupportedHolidayNames returns a copy of the holiday name table
func SupportedHolidayNames() []string {
	return append([]string(nil), supportedHolidayNames[:]...)
}

// NormalizeZone trims surrounding whitespace. Older releases of the
// dataset tooling spelled the third zone " Zone C"; both spellings map
// to the dataset value "Zone C".
func NormalizeZone(zone string) string {
	return strings.TrimSpace(zone)
}

// CheckZone returns true when zone is supported
func CheckZone(zone string) (bool, error) {
	normalized := NormalizeZone(zone)
	for _, z := range supportedZones {
		if z == normalized {
			return true, nil
		}
	}
	return false, &UnsupportedZoneError{Zone: zone, Supported: SupportedZones()}
}

// CheckName returns true when name is one of the six holiday period names
func CheckName(name string) (bool, error) {
	for _, n := range supportedHolidayNames {
		if n == name {
			return true, nil
		}
	}
	return false, &UnsupportedHolidayNameError{Name: name, Supported: SupportedHolidayNames()}
}
