package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payout struct {
	ID         string
	EmployeeID string

	// Snapshot of the employee name at creation time. Employee deletion
	// never cascades here. Bonus lines carry a labelled suffix, e.g.
	// "Jane Doe (First Time Bonus)".
	EmployeeName string

	CalculationType CalculationType

	// Amount is rounded to 2 decimal places at storage time. Rate is a
	// percentage for project payouts and a currency-per-hour figure for
	// hourly payouts.
	Amount decimal.Decimal
	Rate   decimal.Decimal

	// Project payouts only
	ProjectValue       *decimal.Decimal
	CollaboratorsCount *int
	ProjectTitle       *string
	QuotedByID         *string
	QuotedByName       *string
	IsFirstTime        bool

	// Hourly payouts only
	HoursWorked  *decimal.Decimal
	ClockInTime  *time.Time
	ClockOutTime *time.Time

	IsEdited   bool
	EditReason *string

	Source Source

	// External job identifier, set only on webhook-created payouts.
	// Dedup is keyed on (job_id, employee_id); a nil JobID opts out of
	// duplicate detection entirely.
	JobID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CalculationType string

const (
	CalculationTypeHourly  CalculationType = "hourly"
	CalculationTypeProject CalculationType = "project"
)

type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
)
