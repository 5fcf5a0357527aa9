package employee

import (
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName            string           `json:"full_name"`
	Email               string           `json:"email"`
	PayScaleType        string           `json:"pay_scale_type"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate,omitempty"`
	ProjectRate1Member  *decimal.Decimal `json:"project_rate_1_member,omitempty"`
	ProjectRate2Members *decimal.Decimal `json:"project_rate_2_members,omitempty"`
	ProjectRate3Members *decimal.Decimal `json:"project_rate_3_members,omitempty"`
	ProjectRate4Members *decimal.Decimal `json:"project_rate_4_members,omitempty"`
	ProjectRate5Members *decimal.Decimal `json:"project_rate_5_members,omitempty"`
	Status              string           `json:"status"`
	IsAdmin             bool             `json:"is_admin"`
	Timezone            string           `json:"timezone"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !validator.IsInSlice(r.PayScaleType, []string{string(PayScaleTypeHourly), string(PayScaleTypeProject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_scale_type",
			Message: "pay_scale_type must be one of: hourly, project",
		})
	}

	// Pay structure exclusivity by pay_scale_type
	if r.PayScaleType == string(PayScaleTypeHourly) && r.HourlyRate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate is required for hourly employees",
		})
	}
	if r.PayScaleType == string(PayScaleTypeHourly) && r.hasProjectRates() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_scale_type",
			Message: "project rates are not allowed for hourly employees",
		})
	}
	if r.PayScaleType == string(PayScaleTypeProject) && r.HourlyRate != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate is not allowed for project employees",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusOnLeave)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, on_leave",
		})
	}

	if r.Timezone != "" && !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateEmployeeRequest) hasProjectRates() bool {
	return r.ProjectRate1Member != nil ||
		r.ProjectRate2Members != nil ||
		r.ProjectRate3Members != nil ||
		r.ProjectRate4Members != nil ||
		r.ProjectRate5Members != nil
}

type UpdateEmployeeRequest struct {
	ID                  string           `json:"-"`
	FullName            *string          `json:"full_name,omitempty"`
	Email               *string          `json:"email,omitempty"`
	PayScaleType        *string          `json:"pay_scale_type,omitempty"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate,omitempty"`
	ProjectRate1Member  *decimal.Decimal `json:"project_rate_1_member,omitempty"`
	ProjectRate2Members *decimal.Decimal `json:"project_rate_2_members,omitempty"`
	ProjectRate3Members *decimal.Decimal `json:"project_rate_3_members,omitempty"`
	ProjectRate4Members *decimal.Decimal `json:"project_rate_4_members,omitempty"`
	ProjectRate5Members *decimal.Decimal `json:"project_rate_5_members,omitempty"`
	Status              *string          `json:"status,omitempty"`
	IsAdmin             *bool            `json:"is_admin,omitempty"`
	Timezone            *string          `json:"timezone,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.PayScaleType != nil && !validator.IsInSlice(*r.PayScaleType, []string{string(PayScaleTypeHourly), string(PayScaleTypeProject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_scale_type",
			Message: "pay_scale_type must be one of: hourly, project",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusOnLeave)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, on_leave",
		})
	}

	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                  string           `json:"id"`
	FullName            string           `json:"full_name"`
	Email               string           `json:"email"`
	PayScaleType        string           `json:"pay_scale_type"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate,omitempty"`
	ProjectRate1Member  *decimal.Decimal `json:"project_rate_1_member,omitempty"`
	ProjectRate2Members *decimal.Decimal `json:"project_rate_2_members,omitempty"`
	ProjectRate3Members *decimal.Decimal `json:"project_rate_3_members,omitempty"`
	ProjectRate4Members *decimal.Decimal `json:"project_rate_4_members,omitempty"`
	ProjectRate5Members *decimal.Decimal `json:"project_rate_5_members,omitempty"`
	Status              string           `json:"status"`
	IsAdmin             bool             `json:"is_admin"`
	Timezone            string           `json:"timezone"`
	CreatedAt           string           `json:"created_at"`
	UpdatedAt           string           `json:"updated_at"`
}

type EmployeeFilter struct {
	Search       *string `json:"search,omitempty"`
	PayScaleType *string `json:"pay_scale_type,omitempty"`
	Status       *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // full_name, email, status, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
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

	if f.PayScaleType != nil && !validator.IsInSlice(*f.PayScaleType, []string{string(PayScaleTypeHourly), string(PayScaleTypeProject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_scale_type",
			Message: "pay_scale_type must be one of: hourly, project",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusInactive), string(StatusOnLeave)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, on_leave",
		})
	}

	if f.SortBy != "" {
		validSortFields := []string{"full_name", "email", "status", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: full_name, email, status, created_at",
			})
		}
	} else {
		f.SortBy = "full_name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
