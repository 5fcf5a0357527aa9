package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetActiveProjectByNames resolves employee names from an external
	// caller to active project-based employees. Names with no match are
	// silently absent from the result.
	GetActiveProjectByNames(ctx context.Context, names []string) ([]Employee, error)

	// GetByFullName resolves a single employee by exact name match,
	// used for the webhook's quoted-by lookup.
	GetByFullName(ctx context.Context, name string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee row only. Payouts keep their
	// denormalized name snapshot; nothing cascades.
	Delete(ctx context.Context, id string) error
}
