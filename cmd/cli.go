package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "fleetdispatch/internal/adapters/in/http"
	"fleetdispatch/internal/adapters/out/postgres"
	"fleetdispatch/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:          "fleetdispatch",
	Short:        "Zone-based delivery assignment service",
	SilenceUsage: true,
	RunE:         serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  migrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "optional dotenv file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(Config.Validate)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync(log)

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return err
	}
	root, err := NewCompositionRoot(cfg, db, log)
	if err != nil {
		return err
	}

	e := httpin.NewEcho(logger.Component(log, "http"))
	httpin.NewServer(root.CreateHandlers(), logger.Component(log, "http")).
		Register(e, httpin.Authenticate([]byte(cfg.JWTSecret)), root.MetricsHandler())

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.HTTPPort), zap.String("capacity_policy", cfg.CapacityPolicy))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(Config.ValidateDB)
	if err != nil {
		return err
	}
	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return err
	}
	return postgres.Migrate(db)
}

func loadConfig(validate func(Config) error) (Config, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, err
	}
	if err = validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
