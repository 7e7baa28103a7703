package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/usecase/presence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/usecase/timetracking"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/routes"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/cache"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/cron"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/eventbus"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/logger"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/time"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    "employee-portal",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx := context.Background()

	location, err := timeProvider.LoadLocation(cfg.Ledger.Timezone)
	if err != nil {
		return err
	}
	tp := timeProvider.NewRealTimeProvider(location)

	var appMetrics coreport.Metrics = metrics.NewNoopMetrics()
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusMetrics()
		appMetrics = prom
		metricsHandler = prom.Handler()
	}

	store, err := newBackend(ctx, cfg, tp, appLogger)
	if err != nil {
		return err
	}
	defer store.Close()

	bus := eventbus.NewBus(appLogger, appMetrics)

	// The report cache is dropped on local writes and on every ledger event
	var reportCache persistence.ReportCache
	if cfg.Cache.Enabled {
		reportCache = cache.NewReportCache(cfg.Cache.SizeMB, cfg.Cache.TTL, appLogger)
		defer cache.InvalidateOnEvents(reportCache, bus).Unsubscribe()
	}

	service := timetracking.NewService(store.ledgers, store.locks, reportCache, tp, appLogger, appMetrics, timetracking.Options{
		LockTimeout:        cfg.Ledger.LockTimeout,
		MaxConflictRetries: cfg.Ledger.MaxConflictRetries,
		ConflictBackoff:    cfg.Ledger.ConflictBackoff,
		QueueSize:          cfg.Ledger.QueueSize,
		WorkerIdleTimeout:  cfg.Ledger.WorkerIdleTimeout,
	})
	defer service.Shutdown()

	tracker := presence.NewTracker(store.ledgers, bus, tp, appLogger, appMetrics, cfg.Presence.PollInterval)
	if err := tracker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start presence tracker: %w", err)
	}
	defer tracker.Stop()

	if cfg.Kafka.Enabled {
		relay := eventbus.NewKafkaRelay(eventbus.KafkaOptions{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			BatchTimeout: cfg.Kafka.BatchTimeout,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, appLogger)
		relay.Attach(bus)
		defer func() {
			if err := relay.Close(); err != nil {
				appLogger.Warn("Failed to close kafka relay", map[string]any{"error": err.Error()})
			}
		}()
	}

	if cfg.Scheduler.Enabled {
		checker := cron.NewStaleChecker(service, store.lockCleaner, cfg.Scheduler.StaleCheck, appLogger, appMetrics)
		if err := checker.Start(); err != nil {
			return err
		}
		defer checker.Stop()
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, appMetrics, tp, cfg.Server.CORSOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		TimeTracking: handler.NewTimeTrackingHandler(service, bus, tp, appLogger),
		Presence:     handler.NewPresenceHandler(tracker),
		Events:       handler.NewEventsHandler(bus, appLogger),
		Health:       handler.NewHealthHandler(store.name, store.health, appLogger),
		Metrics:      metricsHandler,
		MetricsPath:  cfg.Metrics.Path,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"backend": store.name,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
