package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ptstudio/internal/db"
	"ptstudio/internal/errreport"
	"ptstudio/internal/logger"
	"ptstudio/internal/server"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the email worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Starting PT Studio application")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := errreport.Init(a.cfg.SentryDSN, a.cfg.AppEnv, version); err != nil {
				logger.Warn("sentry disabled", "error", err)
			}
			defer errreport.Flush()

			if !skipMigrations {
				if err := db.RunMigrations(a.db, a.cfg.MigrationsPath); err != nil {
					return fmt.Errorf("run migrations: %w", err)
				}
				logger.Info("Migrations completed")
			}

			workerCtx, cancelWorker := context.WithCancel(context.Background())
			defer cancelWorker()
			go a.email.Start(workerCtx)
			logger.Info("Email worker started")

			deps := a.deps()
			srv := server.New(a.cfg, deps, server.NewServices(a.cfg, deps))

			serverErr := make(chan error, 1)
			go func() {
				logger.Infof("Server starting on port %s", a.cfg.Port)
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-ctx.Done():
				logger.Info("Received shutdown signal")
			case err := <-serverErr:
				logger.Errorf("Server error: %v", err)
			}

			logger.Info("Shutting down gracefully...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			cancelWorker()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Errorf("Error during server shutdown: %v", err)
			}

			logger.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := db.RunMigrations(a.db, a.cfg.MigrationsPath); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			logger.Info("Migrations completed")
			return nil
		},
	}
}

func newBlockBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block-bookings",
		Short: "Manage recurring block bookings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Book the upcoming occurrences of every active block booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			services := server.NewServices(a.cfg, a.deps())
			results, err := services.BlockBookings.GenerateAll(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	})
	return cmd
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Manage the exercise search index",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Push every exercise into Elasticsearch",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			deps := a.deps()
			if deps.Search == nil {
				return errors.New("ELASTICSEARCH_URL is not configured")
			}

			n, err := server.NewServices(a.cfg, deps).Workouts.ReindexExercises(cmd.Context())
			if err != nil {
				return fmt.Errorf("reindex after %d exercises: %w", n, err)
			}
			logger.Info("exercise index rebuilt", "exercises", n)
			return nil
		},
	})
	return cmd
}
