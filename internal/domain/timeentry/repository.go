package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time clock
// entries.
type TimeEntryRepository interface {
	// Create inserts a new entry. The storage layer enforces at most
	// one checked_in entry per employee; a uniqueness violation is
	// returned as ErrAlreadyCheckedIn so the check-in guard holds even
	// when two requests race past the application-level check.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetOpenByEmployee returns the employee's checked_in entry, or
	// ErrNotCheckedIn when none exists.
	GetOpenByEmployee(ctx context.Context, employeeID string) (TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)

	// ListForEmployeeBetween returns entries whose check-in falls in
	// [start, end), used for per-employee local-day bucketing.
	ListForEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)

	// GetCompletedByIDs fetches checked_out entries by id, for summing
	// session hours into an hourly payout.
	GetCompletedByIDs(ctx context.Context, ids []string) ([]TimeEntry, error)
}
