package cmd

import (
	"fmt"
	"io"
	"os"

	"daily-diet/internal/config"
	"daily-diet/internal/database"
	"daily-diet/internal/logging"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "daily-diet",
	Short: "Diet tracking API server",
	Long: `daily-diet serves a small JSON API for recording meals, marking them
as inside or outside a diet, and reporting totals and the best streak.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap loads the config, builds the logger and opens a migrated database.
// The caller owns the returned closer and database.
func bootstrap(load func(string) (*config.Config, error)) (*config.Config, *logging.SlogLogger, io.Closer, *gorm.DB, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, fmt.Errorf("init database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		closer.Close()
		return nil, nil, nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	return cfg, log, closer, db, nil
}
