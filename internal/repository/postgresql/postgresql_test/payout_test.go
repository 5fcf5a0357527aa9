package postgresql_test

import (
	"context"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autoPayout(employeeID, employeeName string, jobID *string) payout.Payout {
	return payout.Payout{
		EmployeeID:      employeeID,
		EmployeeName:    employeeName,
		CalculationType: payout.CalculationTypeProject,
		Amount:          decimal.NewFromInt(300),
		Rate:            decimal.NewFromInt(30),
		Source:          payout.SourceAuto,
		JobID:           jobID,
	}
}

// A second batch for the same job and employee must lose against the
// unique index, not insert a second payout.
func TestPayoutRepository_CreateBatch_DuplicateJobConflicts(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Alice Example")
	repo := postgresql.NewPayoutRepository(db)

	jobID := "job-1001"
	first, err := repo.CreateBatch(ctx, []payout.Payout{autoPayout(employeeID, "Alice Example", &jobID)})
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = repo.CreateBatch(ctx, []payout.Payout{autoPayout(employeeID, "Alice Example", &jobID)})
	assert.ErrorIs(t, err, payout.ErrDuplicatePayout)

	existing, err := repo.GetAutoByJobID(ctx, jobID, []string{employeeID})
	require.NoError(t, err)
	require.Len(t, existing, 1)
	assert.Equal(t, first[0].ID, existing[0].ID)
}

// A bonus line for an employee who also has a base line in the same
// batch carries no job id, so both rows insert.
func TestPayoutRepository_CreateBatch_BonusLineBesideBaseLine(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Alice Example")
	repo := postgresql.NewPayoutRepository(db)

	jobID := "job-1002"
	bonus := autoPayout(employeeID, "Alice Example (Quoted By Bonus)", nil)
	bonus.Amount = decimal.NewFromInt(20)
	bonus.Rate = decimal.NewFromInt(2)

	created, err := repo.CreateBatch(ctx, []payout.Payout{
		autoPayout(employeeID, "Alice Example", &jobID),
		bonus,
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

// The index only covers auto payouts; manual rows repeating a
// (job_id, employee_id) pair are allowed.
func TestPayoutRepository_Create_ManualRowsNotDeduplicated(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Alice Example")
	repo := postgresql.NewPayoutRepository(db)

	jobID := "job-1003"
	manual := autoPayout(employeeID, "Alice Example", &jobID)
	manual.Source = payout.SourceManual

	_, err := repo.Create(ctx, manual)
	require.NoError(t, err)

	_, err = repo.Create(ctx, manual)
	assert.NoError(t, err)
}

func TestPayoutRepository_GetAutoByJobID_OtherEmployeesDoNotMatch(t *testing.T) {
	db := connectTestDB(t)
	truncateAll(t, db)

	ctx := context.Background()
	aliceID := createTestEmployee(t, db, "Alice Example")
	bobID := createTestEmployee(t, db, "Bob Example")
	repo := postgresql.NewPayoutRepository(db)

	jobID := "job-1004"
	_, err := repo.CreateBatch(ctx, []payout.Payout{autoPayout(aliceID, "Alice Example", &jobID)})
	require.NoError(t, err)

	existing, err := repo.GetAutoByJobID(ctx, jobID, []string{bobID})
	require.NoError(t, err)
	assert.Empty(t, existing)
}
