// Command hrctl is the operator CLI for the HR record store: bulk import and export, a dashboard
// summary and a settings dump, all against the same storage backend as the API.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/persistence"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
	"github.com/spec-kit/hr-service/internal/worker"
)

// cliActor is recorded as the actor of every mutation made from the CLI.
const cliActor = domain.RoleCoordinator

// runtime holds the services opened for one command invocation.
type runtime struct {
	store     persistence.Store
	logger    *zap.Logger
	roster    *service.RosterService
	dashboard *service.DashboardService
	settings  *service.SettingsService
}

var (
	env     *runtime
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "Operate the HR record store",
	Long: `hrctl works directly against the configured storage backend.

Configuration is read from the environment (and .env), exactly as the API server does.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openRuntime,
	PersistentPostRunE: closeRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml, yaml, json or .env) with environment-style keys")
}

// applyConfigFile exports every key of the file as an environment variable that is not already
// set, so config.Load treats file values as defaults under the real environment.
func applyConfigFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if os.Getenv(name) != "" {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return err
		}
	}
	return nil
}

func openRuntime(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		if err := applyConfigFile(cfgFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := persistence.Open(ctx, *cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, observability.NewMetrics()))

	employees := repository.NewEmployeeRepository(store, logger)
	taxonomy := repository.NewTaxonomyRepository(store, logger)
	env = &runtime{
		store:  store,
		logger: logger,
		roster: service.NewRosterService(service.RosterDependencies{
			EmployeeRepo: employees,
			TaxonomyRepo: taxonomy,
			Dispatcher:   dispatcher,
			Logger:       logger,
		}),
		dashboard: service.NewDashboardService(employees, taxonomy),
		settings: service.NewSettingsService(cfg.Auth, service.SettingsDependencies{
			TaxonomyRepo: taxonomy,
			Dispatcher:   dispatcher,
			Logger:       logger,
		}),
	}
	return nil
}

func closeRuntime(*cobra.Command, []string) error {
	if env == nil {
		return nil
	}
	env.store.Close()
	_ = env.logger.Sync()
	env = nil
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
