package contract

import (
	"context"

	"slm-marketing-be/internal/entity"
)

// SectionSettingRepository persists the feature-section singleton.
// FindFirst returns the first-created row, or nil when none exists.
type SectionSettingRepository interface {
	Create(ctx context.Context, setting *entity.FeatureSectionSetting) error
	Update(ctx context.Context, setting *entity.FeatureSectionSetting) error
	FindFirst(ctx context.Context) (*entity.FeatureSectionSetting, error)
}
