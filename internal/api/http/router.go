package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/observability"
)

// bodyOverhead leaves room for multipart framing around an upload of the maximum size.
const bodyOverhead = 64 << 10

// NewApp creates the fiber application with global middlewares attached.
func NewApp(cfg config.Config, logger *zap.Logger, metrics *observability.Metrics) *fiber.App {
	limit := cfg.Import.MaxBytes + bodyOverhead
	if limit < fiber.DefaultBodyLimit {
		limit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		BodyLimit:             limit,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	return app
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Dashboard      *handlers.DashboardHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	// Both operator roles may use every endpoint.
	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireRole())
	api.Get("/metrics", cfg.Health.Metrics)
	api.Get("/dashboard", cfg.Dashboard.Get)

	employees := api.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Post("/", cfg.Employees.Create)
	employees.Get("/new", cfg.Employees.New)
	employees.Get("/checkins/pending", cfg.Employees.PendingCheckins)
	employees.Get("/export.csv", cfg.Employees.ExportCSV)
	employees.Get("/export.xlsx", cfg.Employees.ExportXLSX)
	employees.Post("/import", cfg.Employees.Import)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)

	settings := api.Group("/settings")
	settings.Get("/", cfg.Settings.Get)
	settings.Put("/", cfg.Settings.Update)
	settings.Post("/password", cfg.Settings.ChangePassword)
}
