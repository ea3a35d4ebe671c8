package mapper

import (
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/model"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(model *model.ContentAuditLog) *entity.ContentAuditLog {
	if model == nil {
		return nil
	}
	return &entity.ContentAuditLog{
		Id:         model.Id,
		EntityType: model.EntityType,
		EntityId:   model.EntityId,
		Action:     model.Action,
		OccurredAt: model.OccurredAt,
		CreatedAt:  model.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(entity *entity.ContentAuditLog) *model.ContentAuditLog {
	if entity == nil {
		return nil
	}
	return &model.ContentAuditLog{
		Id:         entity.Id,
		EntityType: entity.EntityType,
		EntityId:   entity.EntityId,
		Action:     entity.Action,
		OccurredAt: entity.OccurredAt,
		CreatedAt:  entity.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(models []*model.ContentAuditLog) []*entity.ContentAuditLog {
	entities := make([]*entity.ContentAuditLog, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
