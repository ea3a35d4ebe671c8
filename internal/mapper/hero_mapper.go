// Mapper for Hero entity <-> model conversion
package mapper

import (
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/model"
)

type HeroMapper struct{}

func NewHeroMapper() *HeroMapper {
	return &HeroMapper{}
}

func (m *HeroMapper) ToEntity(model *model.Hero) *entity.Hero {
	if model == nil {
		return nil
	}
	return &entity.Hero{
		Id:                model.Id,
		Title:             model.Title,
		Subtitle:          model.Subtitle,
		Badge:             model.Badge,
		SocialProof:       model.SocialProof,
		DisplayOrder:      model.DisplayOrder,
		PrimaryCtaLabel:   model.PrimaryCtaLabel,
		PrimaryCtaHref:    model.PrimaryCtaHref,
		SecondaryCtaLabel: model.SecondaryCtaLabel,
		SecondaryCtaHref:  model.SecondaryCtaHref,
		Status:            entity.Status(model.Status),
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func (m *HeroMapper) ToModel(entity *entity.Hero) *model.Hero {
	if entity == nil {
		return nil
	}
	return &model.Hero{
		Id:                entity.Id,
		Title:             entity.Title,
		Subtitle:          entity.Subtitle,
		Badge:             entity.Badge,
		SocialProof:       entity.SocialProof,
		DisplayOrder:      entity.DisplayOrder,
		PrimaryCtaLabel:   entity.PrimaryCtaLabel,
		PrimaryCtaHref:    entity.PrimaryCtaHref,
		SecondaryCtaLabel: entity.SecondaryCtaLabel,
		SecondaryCtaHref:  entity.SecondaryCtaHref,
		Status:            string(entity.Status),
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
	}
}

func (m *HeroMapper) ToEntities(models []*model.Hero) []*entity.Hero {
	entities := make([]*entity.Hero, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
