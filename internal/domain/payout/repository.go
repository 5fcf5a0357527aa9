package payout

import (
	"context"
)

// PayoutRepository defines data access methods for payout rows.
type PayoutRepository interface {
	// CreateBatch inserts all rows of one calculation in a single
	// transaction. The storage layer holds a unique index on
	// (job_id, employee_id) for auto payouts; a violation surfaces as
	// ErrDuplicatePayout so concurrent webhook calls cannot both land.
	CreateBatch(ctx context.Context, payouts []Payout) ([]Payout, error)

	Create(ctx context.Context, p Payout) (Payout, error)

	GetByID(ctx context.Context, id string) (Payout, error)

	// GetAutoByJobID returns existing auto-source payouts carrying the
	// job id for any of the given employees. An empty result means the
	// job has not been processed for them.
	GetAutoByJobID(ctx context.Context, jobID string, employeeIDs []string) ([]Payout, error)

	List(ctx context.Context, filter PayoutFilter) ([]Payout, int64, error)

	Update(ctx context.Context, p Payout) error

	Delete(ctx context.Context, id string) error
}
