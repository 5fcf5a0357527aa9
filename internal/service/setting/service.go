package setting

import (
	"context"
	"fmt"

	"github.com/crewpay/crewpay-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

// LoadBonusConfig implements setting.SettingService.
func (s *SettingServiceImpl) LoadBonusConfig(ctx context.Context) (setting.BonusConfig, error) {
	rows, err := s.settingRepo.GetByKeys(ctx, []string{
		setting.KeyFirstTimeBonusPercentage,
		setting.KeyQuotedByBonusPercentage,
	})
	if err != nil {
		return setting.BonusConfig{}, fmt.Errorf("failed to load bonus settings: %w", err)
	}
	return setting.BonusConfigFrom(rows), nil
}

// GetBonusSettings implements setting.SettingService.
func (s *SettingServiceImpl) GetBonusSettings(ctx context.Context) (setting.BonusSettingsResponse, error) {
	cfg, err := s.LoadBonusConfig(ctx)
	if err != nil {
		return setting.BonusSettingsResponse{}, err
	}
	return setting.BonusSettingsResponse{
		FirstTimeBonusPercentage: cfg.FirstTimeBonusPercent,
		QuotedByBonusPercentage:  cfg.QuotedByBonusPercent,
	}, nil
}

// UpdateBonusSettings implements setting.SettingService.
func (s *SettingServiceImpl) UpdateBonusSettings(ctx context.Context, req setting.UpdateBonusSettingsRequest) (setting.BonusSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.BonusSettingsResponse{}, err
	}

	if req.FirstTimeBonusPercentage != nil {
		if err := s.settingRepo.Upsert(ctx, setting.KeyFirstTimeBonusPercentage, req.FirstTimeBonusPercentage.String(), "number"); err != nil {
			return setting.BonusSettingsResponse{}, fmt.Errorf("failed to update first time bonus: %w", err)
		}
	}

	if req.QuotedByBonusPercentage != nil {
		if err := s.settingRepo.Upsert(ctx, setting.KeyQuotedByBonusPercentage, req.QuotedByBonusPercentage.String(), "number"); err != nil {
			return setting.BonusSettingsResponse{}, fmt.Errorf("failed to update quoted by bonus: %w", err)
		}
	}

	return s.GetBonusSettings(ctx)
}
