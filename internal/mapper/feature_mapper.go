// Mapper for Feature entity <-> model conversion
package mapper

import (
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:           model.Id,
		Icon:         model.Icon,
		Title:        model.Title,
		Description:  model.Description,
		DisplayOrder: model.DisplayOrder,
		Status:       entity.Status(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:           entity.Id,
		Icon:         entity.Icon,
		Title:        entity.Title,
		Description:  entity.Description,
		DisplayOrder: entity.DisplayOrder,
		Status:       string(entity.Status),
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
