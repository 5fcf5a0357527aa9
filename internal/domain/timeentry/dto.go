package timeentry

import (
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`

	// Reported by legacy clients; stored verbatim, never used for
	// timezone conversion.
	TimezoneOffsetMinutes *int `json:"timezone_offset,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateTimeEntryRequest is the admin correction path. Clock fields are
// local wall-clock times in the employee's timezone; they are anchored
// to the entry's original local calendar date before conversion back to
// UTC. A checkout earlier than the check-in rolls to the next day
// (overnight shift). ClearCheckOut reverts the entry to checked_in.
type UpdateTimeEntryRequest struct {
	ID            string  `json:"-"`
	CheckInClock  *string `json:"check_in_time,omitempty"`  // HH:MM or HH:MM:SS, local
	CheckOutClock *string `json:"check_out_time,omitempty"` // HH:MM or HH:MM:SS, local
	ClearCheckOut bool    `json:"clear_check_out,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	EditReason    string  `json:"edit_reason"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EditReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "edit_reason",
			Message: "edit_reason is required",
		})
	}

	if r.CheckInClock != nil && !validator.IsValidClockTime(*r.CheckInClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.CheckOutClock != nil && !validator.IsValidClockTime(*r.CheckOutClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.ClearCheckOut && r.CheckOutClock != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "clear_check_out",
			Message: "clear_check_out cannot be combined with check_out_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeEntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	EmployeeName string `json:"employee_name,omitempty"`
	Timezone     string `json:"timezone"`

	// UTC instants as stored
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty"`

	// Wall-clock projections in the employee's timezone
	LocalCheckInTime  string  `json:"local_check_in_time"`
	LocalCheckOutTime *string `json:"local_check_out_time,omitempty"`
	LocalDate         string  `json:"local_date"`

	Status     string           `json:"status"`
	TotalHours *decimal.Decimal `json:"total_hours,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	IsEdited   bool             `json:"is_edited"`
	EditReason *string          `json:"edit_reason,omitempty"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

type TimeEntryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // check_in_time, check_out_time, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *TimeEntryFilter) Validate() error {
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

	if f.Status != nil {
		validStatuses := []string{string(StatusCheckedIn), string(StatusCheckedOut)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: checked_in, checked_out",
			})
		}
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
		validSortFields := []string{"check_in_time", "check_out_time", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: check_in_time, check_out_time, status",
			})
		}
	} else {
		f.SortBy = "check_in_time"
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

type ListTimeEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []TimeEntryResponse `json:"entries"`
}

// TodayResponse groups each employee's entries for their own local
// calendar day.
type TodayResponse struct {
	Employees []TodayEmployeeEntries `json:"employees"`
}

type TodayEmployeeEntries struct {
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name"`
	Timezone     string              `json:"timezone"`
	LocalDate    string              `json:"local_date"`
	Entries      []TimeEntryResponse `json:"entries"`
}
