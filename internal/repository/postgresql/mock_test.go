package postgresql

import (
	"regexp"
	"testing"

	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, database.New(mock)
}

func sqlPattern(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

func strPtr(s string) *string {
	return &s
}
