package setting

import (
	"context"
)

// SettingService defines business logic for the bonus settings panel
type SettingService interface {
	GetBonusSettings(ctx context.Context) (BonusSettingsResponse, error)
	UpdateBonusSettings(ctx context.Context, req UpdateBonusSettingsRequest) (BonusSettingsResponse, error)

	// LoadBonusConfig reads the bonus percentages for one payout
	// computation, applying defaults for missing or unparseable rows.
	LoadBonusConfig(ctx context.Context) (BonusConfig, error)
}
