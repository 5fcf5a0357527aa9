package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       string
	FullName string
	Email    string

	// Exactly one pay structure is active, selected by PayScaleType:
	// HourlyRate for hourly employees, the five tiered project rates
	// for project employees.
	PayScaleType        PayScaleType
	HourlyRate          *decimal.Decimal
	ProjectRate1Member  *decimal.Decimal
	ProjectRate2Members *decimal.Decimal
	ProjectRate3Members *decimal.Decimal
	ProjectRate4Members *decimal.Decimal
	ProjectRate5Members *decimal.Decimal

	Status   Status
	IsAdmin  bool
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayScaleType string

const (
	PayScaleTypeHourly  PayScaleType = "hourly"
	PayScaleTypeProject PayScaleType = "project"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

// ProjectRateFor returns the percentage rate for a project with the
// given number of collaborators. Lookup saturates: more than five
// collaborators reuse the five-member rate. A nil rate returns zero,
// which callers treat as "skip this employee".
func (e Employee) ProjectRateFor(collaborators int) decimal.Decimal {
	if collaborators > 5 {
		collaborators = 5
	}

	var rate *decimal.Decimal
	switch collaborators {
	case 1:
		rate = e.ProjectRate1Member
	case 2:
		rate = e.ProjectRate2Members
	case 3:
		rate = e.ProjectRate3Members
	case 4:
		rate = e.ProjectRate4Members
	case 5:
		rate = e.ProjectRate5Members
	}

	if rate == nil {
		return decimal.Zero
	}
	return *rate
}

// Location returns the employee's IANA timezone, defaulting when unset.
func (e Employee) Location() string {
	if e.Timezone == "" {
		return "America/Chicago"
	}
	return e.Timezone
}
