package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chrissnell/vacances/internal/controllers/restserver"
	"github.com/chrissnell/vacances/internal/log"
	"github.com/chrissnell/vacances/pkg/config"
	"github.com/chrissnell/vacances/pkg/vacances"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	config *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		config: cfg,
		logger: logger,
	}
}

// HolidaySource builds the dataset facade described by the dataset section
func HolidaySource(cfg config.DatasetData, logger *zap.SugaredLogger) *vacances.SchoolHolidayDates {
	opts := []vacances.Option{
		vacances.WithGetter(vacances.NewHTTPClient(cfg.Timeout)),
		vacances.WithLogger(logger),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, vacances.WithEndpoint(cfg.Endpoint))
	}
	return vacances.New(opts...)
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, msg := range a.config.ApplyDefaults() {
		log.Info(msg)
	}
	if err := a.config.Validate(); err != nil {
		return err
	}

	holidays := HolidaySource(a.config.Dataset, a.logger)
	log.Infof("using holiday dataset at %s", holidays.Endpoint())

	ctrl, err := restserver.NewController(ctx, &wg, a.config, holidays, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
