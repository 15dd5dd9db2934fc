package main

import (
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/config"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return printVersion(cmd, m)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return migrateWith(cfg, fn)
}

func migrateWith(cfg *config.Config, fn func(m *database.Migrator) error) error {
	m, err := database.NewMigrator(cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func printVersion(cmd *cobra.Command, m *database.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
	return nil
}
