// Package main is the minicrm server binary.
package main

import (
	"fmt"
	"os"

	"github.com/Shattajit/Mini-CRM/db"
	"github.com/Shattajit/Mini-CRM/internal/config"
	"github.com/Shattajit/Mini-CRM/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minicrm",
	Short: "Mini-CRM API server",
	Long: `minicrm serves the clients, projects, interactions and reminders API.

Running it without a subcommand is the same as "minicrm serve".`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file; environment variables take precedence")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap loads config, builds the logger and opens a migrated database.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	gdb, err := db.ConnectDatabase(cfg.Database)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.MigrateDatabase(gdb); err != nil {
		_ = db.Close(gdb)
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	return cfg, log, gdb, nil
}
