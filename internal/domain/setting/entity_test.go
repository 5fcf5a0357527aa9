package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBonusConfigFrom(t *testing.T) {
	tests := []struct {
		name          string
		settings      []AppSetting
		wantFirstTime string
		wantQuotedBy  string
	}{
		{
			name:          "empty falls back to defaults",
			settings:      nil,
			wantFirstTime: "30",
			wantQuotedBy:  "2",
		},
		{
			name: "configured values win",
			settings: []AppSetting{
				{Key: KeyFirstTimeBonusPercentage, Value: "45"},
				{Key: KeyQuotedByBonusPercentage, Value: "3.5"},
			},
			wantFirstTime: "45",
			wantQuotedBy:  "3.5",
		},
		{
			name: "unparseable value falls back per key",
			settings: []AppSetting{
				{Key: KeyFirstTimeBonusPercentage, Value: "not-a-number"},
				{Key: KeyQuotedByBonusPercentage, Value: "5"},
			},
			wantFirstTime: "30",
			wantQuotedBy:  "5",
		},
		{
			name: "unknown keys are ignored",
			settings: []AppSetting{
				{Key: "theme", Value: "dark"},
			},
			wantFirstTime: "30",
			wantQuotedBy:  "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := BonusConfigFrom(tt.settings)
			assert.Equal(t, tt.wantFirstTime, cfg.FirstTimeBonusPercent.String())
			assert.Equal(t, tt.wantQuotedBy, cfg.QuotedByBonusPercent.String())
		})
	}
}
