package setting

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppSetting is a key/value/type configuration row, mutated through the
// admin settings screen.
type AppSetting struct {
	ID        string
	Key       string
	Value     string
	Type      string
	UpdatedAt time.Time
}

// Setting keys consumed by the payout engine.
const (
	KeyFirstTimeBonusPercentage = "first_time_bonus_percentage"
	KeyQuotedByBonusPercentage  = "quoted_by_bonus_percentage"
)

// Defaults applied when a settings row is missing or unparseable.
var (
	DefaultFirstTimeBonusPercent = decimal.NewFromInt(30)
	DefaultQuotedByBonusPercent  = decimal.NewFromInt(2)
)

// BonusConfig is the bonus percentages snapshot handed to the payout
// engine. It is loaded fresh on every computation and passed by value;
// nothing reads settings ambiently.
type BonusConfig struct {
	FirstTimeBonusPercent decimal.Decimal
	QuotedByBonusPercent  decimal.Decimal
}

// BonusConfigFrom builds a BonusConfig from raw settings rows, falling
// back per key on missing or unparseable values.
func BonusConfigFrom(settings []AppSetting) BonusConfig {
	cfg := BonusConfig{
		FirstTimeBonusPercent: DefaultFirstTimeBonusPercent,
		QuotedByBonusPercent:  DefaultQuotedByBonusPercent,
	}

	for _, s := range settings {
		value, err := decimal.NewFromString(s.Value)
		if err != nil {
			continue
		}
		switch s.Key {
		case KeyFirstTimeBonusPercentage:
			cfg.FirstTimeBonusPercent = value
		case KeyQuotedByBonusPercentage:
			cfg.QuotedByBonusPercent = value
		}
	}

	return cfg
}
