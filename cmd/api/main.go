package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-service/internal/api/http"
	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/persistence"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
	"github.com/spec-kit/hr-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.Open(ctx, *cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer store.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	employeeRepo := repository.NewEmployeeRepository(store, logger)
	taxonomyRepo := repository.NewTaxonomyRepository(store, logger)

	rosterService := service.NewRosterService(service.RosterDependencies{
		EmployeeRepo: employeeRepo,
		TaxonomyRepo: taxonomyRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	settingsService := service.NewSettingsService(cfg.Auth, service.SettingsDependencies{
		TaxonomyRepo: taxonomyRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	authService := service.NewAuthService(*cfg, taxonomyRepo)
	dashboardService := service.NewDashboardService(employeeRepo, taxonomyRepo)

	app := httptransport.NewApp(*cfg, logger, metrics)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Storage.Backend, store, metrics),
		Auth:           handlers.NewAuthHandler(authService, settingsService),
		Employees:      handlers.NewEmployeesHandler(rosterService, cfg.Import.MaxBytes),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("storage", cfg.Storage.Backend))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
