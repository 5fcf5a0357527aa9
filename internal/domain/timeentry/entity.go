package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimeEntry struct {
	ID         string
	EmployeeID string

	// CheckInTime and CheckOutTime are UTC instants. Display conversion
	// always derives from the employee's IANA timezone, never from the
	// legacy TimezoneOffsetMinutes audit field.
	CheckInTime  time.Time
	CheckOutTime *time.Time

	Status     Status
	TotalHours *decimal.Decimal
	Notes      *string

	// Deprecated: superseded by the employee's IANA timezone. Kept as an
	// audit artifact of what the client reported at check-in.
	TimezoneOffsetMinutes *int

	IsEdited   bool
	EditReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName     *string
	EmployeeTimezone *string
}

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)
