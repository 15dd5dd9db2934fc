package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/hrflo/hrflo-backend/internal/pkg/database"
)

// TestDatabaseSetup holds a migrated live test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the embedded migrations.
// It returns nil without error when TEST_DATABASE_URL is unset.
func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	migrator, err := database.NewMigrator(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to init migrator: %w", err)
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{MaxConns: 5, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes all rows from every table
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"documents",
		"succession_plans",
		"promotions",
		"onboarding_records",
		"applications",
		"candidates",
		"job_postings",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database pool
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
