package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hrflo/hrflo-backend/internal/config"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "hrflo",
	Short:         "HR record management backend",
	Long:          `Employees, recruitment, onboarding, promotions, succession plans and employee documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the default JSON logger at the configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	})).With(slog.String("app", "hrflo")))

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
