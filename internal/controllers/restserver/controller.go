package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/vacances/internal/log"
	"github.com/chrissnell/vacances/pkg/config"
	"github.com/chrissnell/vacances/pkg/vacances"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	restConfig     config.RESTData
	calendarConfig config.CalendarData
	Server         http.Server
	Holidays       *vacances.SchoolHolidayDates
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg *config.ConfigData, holidays *vacances.SchoolHolidayDates, logger *zap.SugaredLogger) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration provided")
	}
	if holidays == nil {
		return nil, fmt.Errorf("no holiday source provided")
	}

	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		restConfig:     cfg.REST,
		calendarConfig: cfg.Calendar,
		Holidays:       holidays,
		logger:         logger,
	}

	if zone := cfg.Calendar.DefaultZone; zone != "" {
		if _, err := vacances.CheckZone(zone); err != nil {
			return nil, fmt.Errorf("calendar.default-zone: %w", err)
		}
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if ctrl.restConfig.ListenAddr == "" {
		logger.Infof("rest.listen-addr not provided; defaulting to %s (all interfaces)", config.DefaultListenAddr)
		ctrl.restConfig.ListenAddr = config.DefaultListenAddr
	}

	// Set default HTTP port if not specified
	if ctrl.restConfig.Port == 0 {
		logger.Infof("rest.port not provided; defaulting to %d", config.DefaultPort)
		ctrl.restConfig.Port = config.DefaultPort
	}

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = ctrl.restConfig.Addr()
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// Handler returns the router serving every endpoint
func (c *Controller) Handler() http.Handler {
	return c.Server.Handler
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Infof("Starting REST server controller on %s...", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.TLS() {
			if err := c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(requestIDMiddleware)
	router.Use(accessLogMiddleware)

	router.HandleFunc("/healthz", c.handlers.GetHealth).Methods(http.MethodGet)
	router.HandleFunc("/zones", c.handlers.GetZones).Methods(http.MethodGet)
	router.HandleFunc("/names", c.handlers.GetNames).Methods(http.MethodGet)
	router.HandleFunc("/holidays/{year:[0-9]{4}}", c.handlers.GetHolidays).Methods(http.MethodGet)
	router.HandleFunc("/holiday/{date}", c.handlers.GetHolidayCheck).Methods(http.MethodGet)
	router.HandleFunc("/public/{year:[0-9]{4}}", c.handlers.GetPublicHolidays).Methods(http.MethodGet)
	router.HandleFunc("/calendar/{year:[0-9]{4}}.ics", c.handlers.GetCalendar).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(c.handlers.NotFound)

	return router
}
