// Repository interface for Hero
package contract

import (
	"context"

	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HeroRepository interface {
	Create(ctx context.Context, hero *entity.Hero) error
	Update(ctx context.Context, hero *entity.Hero) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hero, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hero, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
