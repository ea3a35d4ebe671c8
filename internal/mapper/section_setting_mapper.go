package mapper

import (
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/model"
)

type SectionSettingMapper struct{}

func NewSectionSettingMapper() *SectionSettingMapper {
	return &SectionSettingMapper{}
}

func (m *SectionSettingMapper) ToEntity(model *model.FeatureSectionSetting) *entity.FeatureSectionSetting {
	if model == nil {
		return nil
	}
	return &entity.FeatureSectionSetting{
		Id:                 model.Id,
		SectionTitle:       model.SectionTitle,
		SectionDescription: model.SectionDescription,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func (m *SectionSettingMapper) ToModel(entity *entity.FeatureSectionSetting) *model.FeatureSectionSetting {
	if entity == nil {
		return nil
	}
	return &model.FeatureSectionSetting{
		Id:                 entity.Id,
		SectionTitle:       entity.SectionTitle,
		SectionDescription: entity.SectionDescription,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}
