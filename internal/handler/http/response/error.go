package response

import (
	"errors"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payout"
	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
	"github.com/crewpay/crewpay-backend-go/internal/domain/timeentry"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Time clock domain errors
	case errors.Is(err, timeentry.ErrAlreadyCheckedIn):
		Conflict(w, "Employee is already checked in")
	case errors.Is(err, timeentry.ErrNotCheckedIn):
		Conflict(w, "Employee is not checked in")
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout not found")
	case errors.Is(err, payout.ErrDuplicatePayout):
		Conflict(w, "Duplicate payouts")
	case errors.Is(err, payout.ErrMissingFields):
		BadRequest(w, "Missing required fields", nil)
	case errors.Is(err, payout.ErrNoMatchingEmployees):
		BadRequest(w, "No matching project-based employees found", nil)
	case errors.Is(err, payout.ErrNoPayoutsCalculated):
		BadRequest(w, "No payouts could be calculated", nil)

	// Settings domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
