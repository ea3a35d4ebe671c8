package contract

import (
	"context"

	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
