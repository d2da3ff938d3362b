// Package vacances queries the French school holiday calendar published on
// data.education.gouv.fr and turns holiday periods into a per-day lookup.
package vacances

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// InvalidDateError is returned when a date argument carries a time of day
type InvalidDateError struct {
	Value time.Time
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("date should be a calendar date without time of day, got %s", e.Value.Format(time.RFC3339Nano))
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// SchoolHolidayDates answers holiday questions against the dataset.
// It holds no mutable state; one value can serve concurrent callers.
type SchoolHolidayDates struct {
	endpoint string
	client   Getter
	logger   *zap.SugaredLogger
}

// Option configures a SchoolHolidayDates
type Option func(*SchoolHolidayDates)

// WithEndpoint overrides DefaultEndpoint
func WithEndpoint(endpoint string) Option {
	return func(s *SchoolHolidayDates) {
		s.endpoint = endpoint
	}
}

// WithGetter replaces the HTTP collaborator
func WithGetter(g Getter) Option {
	return func(s *SchoolHolidayDates) {
		s.client = g
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *SchoolHolidayDates) {
		s.logger = logger
	}
}

// New returns a SchoolHolidayDates using DefaultEndpoint and an
// HTTPClient with DefaultTimeout unless overridden.
func New(opts ...Option) *SchoolHolidayDates {
	s := &SchoolHolidayDates{
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = NewHTTPClient(DefaultTimeout)
	}
	if s.logger == nil {
		s.logger = zap.NewNop().Sugar()
	}
	return s
}

// Endpoint returns the dataset URL queries are sent to
func (s *SchoolHolidayDates) Endpoint() string {
	return s.endpoint
}

// HolidaysForYear returns every holiday day of periods starting in year
func (s *SchoolHolidayDates) HolidaysForYear(ctx context.Context, year int) (Holidays, error) {
	return s.fetch(ctx, YearQuery(year))
}

// HolidayForYearByName returns the days of the named period starting in year
func (s *SchoolHolidayDates) HolidayForYearByName(ctx context.Context, year int, name string) (Holidays, error) {
	if _, err := CheckName(name); err != nil {
		return nil, err
	}
	return s.fetch(ctx, YearQuery(year).WithName(name))
}

// HolidaysForYearAndZone returns the holiday days of one zone for periods starting in year
func (s *SchoolHolidayDates) HolidaysForYearAndZone(ctx context.Context, year int, zone string) (Holidays, error) {
	if _, err := CheckZone(zone); err != nil {
		return nil, err
	}
	return s.fetch(ctx, YearQuery(year).WithZone(NormalizeZone(zone)))
}

// HolidaysForYearZoneAndName combines the zone and name filters.
// The zone is validated before the name.
func (s *SchoolHolidayDates) HolidaysForYearZoneAndName(ctx context.Context, year int, zone, name string) (Holidays, error) {
	if _, err := CheckZone(zone); err != nil {
		return nil, err
	}
	if _, err := CheckName(name); err != nil {
		return nil, err
	}
	return s.fetch(ctx, YearQuery(year).WithZone(NormalizeZone(zone)).WithName(name))
}

// IsHoliday reports whether date falls in a holiday period of any zone.
// date must be a calendar date: midnight with no sub-second part.
func (s *SchoolHolidayDates) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	d, err := calendarDate(date)
	if err != nil {
		return false, err
	}
	holidays, err := s.fetch(ctx, DateQuery(d).WithZoneIn(supportedZones[:]...))
	if err != nil {
		return false, err
	}
	return len(holidays) > 0, nil
}

// IsHolidayForZone reports whether date is a holiday in zone. Unlike the
// year queries, zone is passed to the dataset without validation: an
// unknown zone simply matches nothing.
func (s *SchoolHolidayDates) IsHolidayForZone(ctx context.Context, date time.Time, zone string) (bool, error) {
	d, err := calendarDate(date)
	if err != nil {
		return false, err
	}
	holidays, err := s.fetch(ctx, DateQuery(d).WithZone(NormalizeZone(zone)))
	if err != nil {
		return false, err
	}
	return len(holidays) > 0, nil
}

func calendarDate(t time.Time) (Date, error) {
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return Date{}, &InvalidDateError{Value: t}
	}
	return DateOf(t), nil
}

// fetch performs one round trip. Transport and decoding errors are
// returned unchanged.
func (s *SchoolHolidayDates) fetch(ctx context.Context, q Query) (Holidays, error) {
	u := q.URL(s.endpoint)
	s.logger.Debugw("querying school holiday dataset", "where", q.Where(), "url", u)

	resp, err := s.client.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warnw("holiday dataset returned a non-200 status; treating as no holidays",
			"status", resp.StatusCode, "where", q.Where())
	}

	holidays, err := ParseResponse(resp)
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("expanded holiday periods", "where", q.Where(), "days", len(holidays))
	return holidays, nil
}
