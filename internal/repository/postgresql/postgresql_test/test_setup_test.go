package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// connectTestDB returns a connection to the database named by
// TEST_DATABASE_URL, or skips the test when the variable is unset.
// These tests exercise the real constraints and partial indexes, so
// the schema from migrations/ must already be applied.
func connectTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	return db
}

// truncateAll resets every table touched by the repository tests.
func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"payouts", "time_entries", "employees", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err, "failed to truncate %s", table)
	}
}

// createTestEmployee inserts a minimal project-based employee row and
// returns its id.
func createTestEmployee(t *testing.T, db *database.DB, fullName string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO employees (id, full_name, email, pay_scale_type, project_rate_1_member, status)
		VALUES ($1, $2, $3, 'project', 30, 'active')
	`, id, fullName, id+"@example.com")
	require.NoError(t, err)

	return id
}
