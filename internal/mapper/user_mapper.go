package mapper

import (
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(model *model.User) *entity.User {
	if model == nil {
		return nil
	}
	return &entity.User{
		Id:           model.Id,
		Email:        model.Email,
		FullName:     model.FullName,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(entity *entity.User) *model.User {
	if entity == nil {
		return nil
	}
	return &model.User{
		Id:           entity.Id,
		Email:        entity.Email,
		FullName:     entity.FullName,
		PasswordHash: entity.PasswordHash,
		Role:         entity.Role,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
