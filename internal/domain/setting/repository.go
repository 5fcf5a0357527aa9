package setting

import (
	"context"
)

// SettingRepository defines data access methods for app settings.
type SettingRepository interface {
	// GetByKeys returns the settings rows for the given keys. Missing
	// keys are simply absent from the result.
	GetByKeys(ctx context.Context, keys []string) ([]AppSetting, error)

	// Upsert writes a setting value, creating the row when absent.
	Upsert(ctx context.Context, key, value, valueType string) error
}
