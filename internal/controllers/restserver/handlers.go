package restserver

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/chrissnell/vacances/internal/constants"
	"github.com/chrissnell/vacances/internal/log"
	"github.com/chrissnell/vacances/pkg/export"
	"github.com/chrissnell/vacances/pkg/feries"
	"github.com/chrissnell/vacances/pkg/responseformat"
	"github.com/chrissnell/vacances/pkg/vacances"
	"github.com/gorilla/mux"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// writeError maps an error to a status code and writes the error body.
// Validation failures are the client's fault; anything else came from
// the dataset.
func (h *Handlers) writeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, vacances.ErrUnsupportedZone):
		h.formatter.WriteError(w, req, http.StatusBadRequest, "unsupported zone", err.Error())
	case errors.Is(err, vacances.ErrUnsupportedHolidayName):
		h.formatter.WriteError(w, req, http.StatusBadRequest, "unsupported holiday name", err.Error())
	case errors.Is(err, vacances.ErrInvalidDate):
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid date", err.Error())
	default:
		log.Errorw("holiday dataset request failed", "error", err, "request_id", RequestID(req.Context()))
		h.formatter.WriteError(w, req, http.StatusBadGateway, "holiday dataset unavailable", err.Error())
	}
}

func yearVar(req *http.Request) (int, error) {
	year, err := strconv.Atoi(mux.Vars(req)["year"])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", mux.Vars(req)["year"])
	}
	return year, nil
}

// holidaysFor picks the facade method matching the zone and name filters
func (h *Handlers) holidaysFor(req *http.Request, year int, zone, name string) (vacances.Holidays, error) {
	s := h.controller.Holidays
	ctx := req.Context()
	switch {
	case zone != "" && name != "":
		return s.HolidaysForYearZoneAndName(ctx, year, zone, name)
	case zone != "":
		return s.HolidaysForYearAndZone(ctx, year, zone)
	case name != "":
		return s.HolidayForYearByName(ctx, year, name)
	default:
		return s.HolidaysForYear(ctx, year)
	}
}

// GetHolidays handles /holidays/{year}
func (h *Handlers) GetHolidays(w http.ResponseWriter, req *http.Request) {
	year, err := yearVar(req)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	zone := req.URL.Query().Get("zone")
	name := req.URL.Query().Get("name")

	holidays, err := h.holidaysFor(req, year, zone, name)
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	days := transformDayEntries(holidays)
	h.formatter.WriteResponse(w, req, HolidaysResponse{
		Year:  year,
		Zone:  vacances.NormalizeZone(zone),
		Name:  name,
		Count: len(days),
		Days:  days,
	}, nil)
}

// GetHolidayCheck handles /holiday/{date}
func (h *Handlers) GetHolidayCheck(w http.ResponseWriter, req *http.Request) {
	d, err := vacances.ParseDate(mux.Vars(req)["date"])
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	// The facade leaves the zone of a single-date check unvalidated; an
	// HTTP client gets a 400 instead of a silent false.
	zone := req.URL.Query().Get("zone")
	midnight := d.In(vacances.Paris())

	var holiday bool
	if zone == "" {
		holiday, err = h.controller.Holidays.IsHoliday(req.Context(), midnight)
	} else {
		if _, err := vacances.CheckZone(zone); err != nil {
			h.writeError(w, req, err)
			return
		}
		holiday, err = h.controller.Holidays.IsHolidayForZone(req.Context(), midnight, zone)
	}
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	h.formatter.WriteResponse(w, req, HolidayCheckResponse{
		Date:    d.String(),
		Zone:    vacances.NormalizeZone(zone),
		Holiday: holiday,
	}, nil)
}

// GetPublicHolidays handles /public/{year}
func (h *Handlers) GetPublicHolidays(w http.ResponseWriter, req *http.Request) {
	year, err := yearVar(req)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	h.formatter.WriteResponse(w, req, PublicHolidaysResponse{
		Year:     year,
		Holidays: transformPublicHolidays(feries.ForYear(year)),
	}, nil)
}

// GetCalendar handles /calendar/{year}.ics, an iCalendar subscription feed
func (h *Handlers) GetCalendar(w http.ResponseWriter, req *http.Request) {
	year, err := yearVar(req)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	cfg := h.controller.calendarConfig
	query := req.URL.Query()

	zone := query.Get("zone")
	if zone == "" {
		zone = cfg.DefaultZone
	}
	name := query.Get("name")

	includePublic := cfg.IncludePublic
	if p := query.Get("public"); p != "" {
		includePublic, err = strconv.ParseBool(p)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid public flag", err.Error())
			return
		}
	}

	holidays, err := h.holidaysFor(req, year, zone, name)
	if err != nil {
		h.writeError(w, req, err)
		return
	}

	calName := fmt.Sprintf("Vacances scolaires %d", year)
	if zone != "" {
		calName += ", " + vacances.NormalizeZone(zone)
	}

	c := export.Calendar{
		Name:      calName,
		ProductID: cfg.ProductID,
		Holidays:  holidays,
	}
	if includePublic {
		c.Public = feries.ForYear(year)
	}

	var buf bytes.Buffer
	if err := export.WriteICS(&buf, c); err != nil {
		log.Errorw("error rendering calendar", "year", year, "error", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "calendar rendering failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", fmt.Sprintf("vacances-%d.ics", year)))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

// GetZones lists the supported zones
func (h *Handlers) GetZones(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, vacances.SupportedZones(), nil)
}

// GetNames lists the supported holiday names
func (h *Handlers) GetNames(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, vacances.SupportedHolidayNames(), nil)
}

// GetHealth handles /healthz
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, HealthResponse{
		Status:   "ok",
		Version:  constants.Version,
		Endpoint: h.controller.Holidays.Endpoint(),
	}, nil)
}

// NotFound answers unknown paths with the usual error body
func (h *Handlers) NotFound(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteError(w, req, http.StatusNotFound, "not found", strings.TrimSpace(req.URL.Path))
}
