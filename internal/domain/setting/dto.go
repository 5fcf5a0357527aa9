package setting

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BonusSettingsResponse struct {
	FirstTimeBonusPercentage decimal.Decimal `json:"first_time_bonus_percentage"`
	QuotedByBonusPercentage  decimal.Decimal `json:"quoted_by_bonus_percentage"`
}

type UpdateBonusSettingsRequest struct {
	FirstTimeBonusPercentage *decimal.Decimal `json:"first_time_bonus_percentage,omitempty"`
	QuotedByBonusPercentage  *decimal.Decimal `json:"quoted_by_bonus_percentage,omitempty"`
}

func (r *UpdateBonusSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstTimeBonusPercentage == nil && r.QuotedByBonusPercentage == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "first_time_bonus_percentage",
			Message: "at least one setting must be provided",
		})
	}

	if r.FirstTimeBonusPercentage != nil && r.FirstTimeBonusPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "first_time_bonus_percentage",
			Message: "first_time_bonus_percentage must not be negative",
		})
	}

	if r.QuotedByBonusPercentage != nil && r.QuotedByBonusPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "quoted_by_bonus_percentage",
			Message: "quoted_by_bonus_percentage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
