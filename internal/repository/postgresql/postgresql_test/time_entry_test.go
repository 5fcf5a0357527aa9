package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The partial unique index allows at most one open entry per employee,
// even when the application-level guard is bypassed.
func TestTimeEntryRepository_Create_SecondOpenEntryConflicts(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Alice Example")
	repo := postgresql.NewTimeEntryRepository(db)

	_, err := repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID:  employeeID,
		CheckInTime: time.Now().UTC(),
		Status:      timeentry.StatusCheckedIn,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, timeentry.TimeEntry{
		EmployeeID:  employeeID,
		CheckInTime: time.Now().UTC(),
		Status:      timeentry.StatusCheckedIn,
	})
	assert.ErrorIs(t, err, timeentry.ErrAlreadyCheckedIn)
}

// Closed entries are outside the index; an employee accumulates any
// number of them.
func TestTimeEntryRepository_Create_ClosedEntriesAccumulate(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Alice Example")
	repo := postgresql.NewTimeEntryRepository(db)

	for i := 0; i < 2; i++ {
		in := time.Now().UTC().Add(time.Duration(-i-1) * 24 * time.Hour)
		out := in.Add(8 * time.Hour)
		hours := decimal.NewFromInt(8)

		_, err := repo.Create(ctx, timeentry.TimeEntry{
			EmployeeID:   employeeID,
			CheckInTime:  in,
			CheckOutTime: &out,
			Status:       timeentry.StatusCheckedOut,
			TotalHours:   &hours,
		})
		require.NoError(t, err)
	}

	_, err := repo.GetOpenByEmployee(ctx, employeeID)
	assert.ErrorIs(t, err, timeentry.ErrNotCheckedIn)
}
