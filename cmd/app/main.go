package main

import (
	"os"

	"ptstudio/internal/logger"

	"github.com/spf13/cobra"
)

// @title PT Studio API
// @version 1.0
// @description API for a personal training studio: sessions, credits, workouts, programmes and messaging.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "ptstudio",
		Short:         "PT Studio backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(
		serve,
		newMigrateCmd(),
		newBlockBookingsCmd(),
		newSearchCmd(),
	)
	return root
}
