package payout

import (
	"strings"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// WebhookRequest is the upstream "project closed" event body. Field
// names are the external contract and must not change.
type WebhookRequest struct {
	ProjectValue      decimal.Decimal `json:"project_value"`
	ProjectTitle      string          `json:"project_title"`
	QuotedByName      string          `json:"quoted_by_name"`
	FirstTime         bool            `json:"first_time"`
	EmployeesAssigned []string        `json:"employees_assigned"`
	JobID             *string         `json:"job_id,omitempty"`
}

// Validate enforces the webhook's terminal validation failures. These
// map to the flat 400 error strings of the external contract, so a
// sentinel error is returned instead of field-level ValidationErrors.
func (r *WebhookRequest) Validate() error {
	if r.ProjectValue.LessThanOrEqual(decimal.Zero) ||
		validator.IsEmpty(r.ProjectTitle) ||
		len(r.EmployeesAssigned) == 0 {
		return ErrMissingFields
	}
	return nil
}

type CreateManualPayoutRequest struct {
	EmployeeID      string `json:"employee_id"`
	CalculationType string `json:"calculation_type"`

	// Project mode
	ProjectValue       *decimal.Decimal `json:"project_value,omitempty"`
	CollaboratorsCount *int             `json:"collaborators_count,omitempty"`
	ProjectTitle       *string          `json:"project_title,omitempty"`
	QuotedByID         *string          `json:"quoted_by_id,omitempty"`
	IsFirstTime        bool             `json:"is_first_time,omitempty"`

	// Hourly mode: exactly one of explicit hours, a local start/end
	// clock pair (overnight wraps), or completed time entry ids to sum.
	HoursWorked  *decimal.Decimal `json:"hours_worked,omitempty"`
	StartClock   *string          `json:"start_time,omitempty"` // HH:MM
	EndClock     *string          `json:"end_time,omitempty"`   // HH:MM
	TimeEntryIDs []string         `json:"time_entry_ids,omitempty"`
}

func (r *CreateManualPayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	switch r.CalculationType {
	case string(CalculationTypeProject):
		if r.ProjectValue == nil || r.ProjectValue.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{
				Field:   "project_value",
				Message: "project_value must be a positive number",
			})
		}
		if r.CollaboratorsCount == nil || *r.CollaboratorsCount < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "collaborators_count",
				Message: "collaborators_count must be at least 1",
			})
		}
		if r.ProjectTitle == nil || validator.IsEmpty(*r.ProjectTitle) {
			errs = append(errs, validator.ValidationError{
				Field:   "project_title",
				Message: "project_title is required",
			})
		}
	case string(CalculationTypeHourly):
		hasHours := r.HoursWorked != nil
		hasClocks := r.StartClock != nil || r.EndClock != nil
		hasEntries := len(r.TimeEntryIDs) > 0

		sources := 0
		for _, set := range []bool{hasHours, hasClocks, hasEntries} {
			if set {
				sources++
			}
		}
		if sources != 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_worked",
				Message: "provide exactly one of hours_worked, start_time/end_time, or time_entry_ids",
			})
		}

		if hasClocks {
			if r.StartClock == nil || !validator.IsValidClockTime(*r.StartClock) {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time",
					Message: "start_time must be in HH:MM format",
				})
			}
			if r.EndClock == nil || !validator.IsValidClockTime(*r.EndClock) {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end_time must be in HH:MM format",
				})
			}
		}

		if hasHours && r.HoursWorked.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_worked",
				Message: "hours_worked must not be negative",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "calculation_type",
			Message: "calculation_type must be one of: hourly, project",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePayoutRequest is the admin hand-edit path. Every edit records
// its reason and flags the row as edited.
type UpdatePayoutRequest struct {
	ID           string           `json:"-"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	ProjectValue *decimal.Decimal `json:"project_value,omitempty"`
	ProjectTitle *string          `json:"project_title,omitempty"`
	HoursWorked  *decimal.Decimal `json:"hours_worked,omitempty"`
	EditReason   string           `json:"edit_reason"`
}

func (r *UpdatePayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EditReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "edit_reason",
			Message: "edit_reason is required",
		})
	}

	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if r.HoursWorked != nil && r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse projects a payout row into its API shape. Timestamps are
// rendered as RFC 3339 UTC.
func (p Payout) ToResponse() PayoutResponse {
	formatTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.UTC().Format(time.RFC3339)
		return &s
	}

	return PayoutResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		CalculationType:    string(p.CalculationType),
		Amount:             p.Amount,
		Rate:               p.Rate,
		ProjectValue:       p.ProjectValue,
		CollaboratorsCount: p.CollaboratorsCount,
		ProjectTitle:       p.ProjectTitle,
		QuotedByID:         p.QuotedByID,
		QuotedByName:       p.QuotedByName,
		IsFirstTime:        p.IsFirstTime,
		HoursWorked:        p.HoursWorked,
		ClockInTime:        formatTime(p.ClockInTime),
		ClockOutTime:       formatTime(p.ClockOutTime),
		IsEdited:           p.IsEdited,
		EditReason:         p.EditReason,
		Source:             string(p.Source),
		JobID:              p.JobID,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type PayoutResponse struct {
	ID                 string           `json:"id"`
	EmployeeID         string           `json:"employee_id"`
	EmployeeName       string           `json:"employee_name"`
	CalculationType    string           `json:"calculation_type"`
	Amount             decimal.Decimal  `json:"amount"`
	Rate               decimal.Decimal  `json:"rate"`
	ProjectValue       *decimal.Decimal `json:"project_value,omitempty"`
	CollaboratorsCount *int             `json:"collaborators_count,omitempty"`
	ProjectTitle       *string          `json:"project_title,omitempty"`
	QuotedByID         *string          `json:"quoted_by_id,omitempty"`
	QuotedByName       *string          `json:"quoted_by_name,omitempty"`
	IsFirstTime        bool             `json:"is_first_time"`
	HoursWorked        *decimal.Decimal `json:"hours_worked,omitempty"`
	ClockInTime        *string          `json:"clock_in_time,omitempty"`
	ClockOutTime       *string          `json:"clock_out_time,omitempty"`
	IsEdited           bool             `json:"is_edited"`
	EditReason         *string          `json:"edit_reason,omitempty"`
	Source             string           `json:"source"`
	JobID              *string          `json:"job_id,omitempty"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

type PayoutFilter struct {
	EmployeeID      *string `json:"employee_id,omitempty"`
	CalculationType *string `json:"calculation_type,omitempty"`
	Source          *string `json:"source,omitempty"`
	StartDate       *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate         *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // created_at, amount, employee_name
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *PayoutFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.CalculationType != nil && !validator.IsInSlice(*f.CalculationType, []string{string(CalculationTypeHourly), string(CalculationTypeProject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "calculation_type",
			Message: "calculation_type must be one of: hourly, project",
		})
	}

	if f.Source != nil && !validator.IsInSlice(*f.Source, []string{string(SourceManual), string(SourceAuto)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: manual, auto",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"created_at", "amount", "employee_name"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: created_at, amount, employee_name",
			})
		}
	} else {
		f.SortBy = "created_at"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPayoutsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Payouts    []PayoutResponse `json:"payouts"`
}
