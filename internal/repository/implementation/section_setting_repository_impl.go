package implementation

import (
	"context"
	"errors"

	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/mapper"
	"slm-marketing-be/internal/model"
	"slm-marketing-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SectionSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SectionSettingMapper
}

func NewSectionSettingRepository(db *gorm.DB) contract.SectionSettingRepository {
	return &SectionSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSectionSettingMapper(),
	}
}

func (r *SectionSettingRepositoryImpl) Create(ctx context.Context, setting *entity.FeatureSectionSetting) error {
	m := r.mapper.ToModel(setting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *SectionSettingRepositoryImpl) Update(ctx context.Context, setting *entity.FeatureSectionSetting) error {
	m := r.mapper.ToModel(setting)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

// FindFirst returns the first-created settings row. UUID keys are not
// creation-ordered, so "lowest id" is expressed as created_at ASC.
func (r *SectionSettingRepositoryImpl) FindFirst(ctx context.Context) (*entity.FeatureSectionSetting, error) {
	var m model.FeatureSectionSetting
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
