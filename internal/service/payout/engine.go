package payout

import (
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/timezone"
	"github.com/shopspring/decimal"
)

// The payout engine: pure calculation over employees, project inputs
// and a bonus config snapshot. Persistence and lookups stay in the
// service; everything here is deterministic.

var oneHundred = decimal.NewFromInt(100)

// ProjectInput is one project-close event after name resolution.
type ProjectInput struct {
	ProjectValue decimal.Decimal
	ProjectTitle string
	// Collaborators is the assignee count as submitted, which may
	// exceed the number of employees that actually resolved.
	Collaborators int
	QuotedBy      *employee.Employee
	FirstTime     bool
	Source        payout.Source
	JobID         *string
}

// ProjectAmount applies the percentage rate to the project value.
// Rounding to 2 places happens here, at materialization, not in any
// intermediate step.
func ProjectAmount(projectValue, rate decimal.Decimal) decimal.Decimal {
	return projectValue.Mul(rate).Div(oneHundred).Round(2)
}

// HourlyAmount is rate × hours, rounded to 2 places.
func HourlyAmount(hourlyRate, hours decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(hours).Round(2)
}

// ElapsedHours converts a checked-in/checked-out UTC pair to hours.
// Computed from instants, never from displayed local times, so DST
// transitions cannot skew the result.
func ElapsedHours(checkIn, checkOut time.Time) decimal.Decimal {
	seconds := checkOut.Sub(checkIn).Seconds()
	if seconds < 0 {
		seconds = 0
	}
	return decimal.NewFromFloat(seconds / 3600).Round(2)
}

// HoursBetweenClock computes hours between two wall-clock times of day,
// "HH:MM" or "HH:MM:SS". An end before the start wraps overnight: 22:00
// to 06:00 is 8 hours, never negative.
func HoursBetweenClock(start, end string) (decimal.Decimal, error) {
	s, err := timezone.ParseClock(start)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := timezone.ParseClock(end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	startMins := s.Hour()*60 + s.Minute()
	endMins := e.Hour()*60 + e.Minute()
	diff := endMins - startMins
	if diff < 0 {
		diff += 24 * 60
	}

	return decimal.NewFromInt(int64(diff)).Div(decimal.NewFromInt(60)).Round(2), nil
}

// BuildProjectPayouts produces one base line per employee with a
// non-zero rate for the collaborator count, plus at most one bonus
// line for the quoted-by employee. First-time and quoted-by bonuses are
// mutually exclusive per project: the first-time flag selects which one
// applies. Employees with a zero rate are skipped, not failed; their
// names are returned for the caller to report.
func BuildProjectPayouts(in ProjectInput, employees []employee.Employee, cfg setting.BonusConfig) (rows []payout.Payout, skipped []string) {
	var quotedByID, quotedByName *string
	if in.QuotedBy != nil {
		quotedByID = &in.QuotedBy.ID
		quotedByName = &in.QuotedBy.FullName
	}

	collaborators := in.Collaborators
	title := in.ProjectTitle
	value := in.ProjectValue

	for _, emp := range employees {
		rate := emp.ProjectRateFor(collaborators)
		if rate.IsZero() {
			skipped = append(skipped, emp.FullName)
			continue
		}

		rows = append(rows, payout.Payout{
			EmployeeID:         emp.ID,
			EmployeeName:       emp.FullName,
			CalculationType:    payout.CalculationTypeProject,
			Amount:             ProjectAmount(value, rate),
			Rate:               rate,
			ProjectValue:       &value,
			CollaboratorsCount: &collaborators,
			ProjectTitle:       &title,
			QuotedByID:         quotedByID,
			QuotedByName:       quotedByName,
			IsFirstTime:        in.FirstTime,
			Source:             in.Source,
			JobID:              in.JobID,
		})
	}

	// No base payouts means nothing to pay; the bonus never rides alone.
	if len(rows) == 0 || in.QuotedBy == nil {
		return rows, skipped
	}

	bonusPercent := cfg.QuotedByBonusPercent
	label := "(Quoted By Bonus)"
	if in.FirstTime {
		bonusPercent = cfg.FirstTimeBonusPercent
		label = "(First Time Bonus)"
	}

	// The bonus line never carries the job id: when the quoted-by
	// employee is also an assignee, a bonus row sharing the base row's
	// (job_id, employee_id) would trip the dedup index and reject the
	// whole batch. The base lines alone pin the job.
	rows = append(rows, payout.Payout{
		EmployeeID:         in.QuotedBy.ID,
		EmployeeName:       in.QuotedBy.FullName + " " + label,
		CalculationType:    payout.CalculationTypeProject,
		Amount:             ProjectAmount(value, bonusPercent),
		Rate:               bonusPercent,
		ProjectValue:       &value,
		CollaboratorsCount: &collaborators,
		ProjectTitle:       &title,
		QuotedByID:         quotedByID,
		QuotedByName:       quotedByName,
		IsFirstTime:        in.FirstTime,
		Source:             in.Source,
	})

	return rows, skipped
}
