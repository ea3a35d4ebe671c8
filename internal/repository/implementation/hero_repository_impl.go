// Implementation of HeroRepository
package implementation

import (
	"context"
	"errors"

	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/mapper"
	"slm-marketing-be/internal/model"
	"slm-marketing-be/internal/repository/contract"
	"slm-marketing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HeroRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HeroMapper
}

func NewHeroRepository(db *gorm.DB) contract.HeroRepository {
	return &HeroRepositoryImpl{
		db:     db,
		mapper: mapper.NewHeroMapper(),
	}
}

func (r *HeroRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HeroRepositoryImpl) Create(ctx context.Context, hero *entity.Hero) error {
	m := r.mapper.ToModel(hero)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*hero = *r.mapper.ToEntity(m)
	return nil
}

func (r *HeroRepositoryImpl) Update(ctx context.Context, hero *entity.Hero) error {
	m := r.mapper.ToModel(hero)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*hero = *r.mapper.ToEntity(m)
	return nil
}

func (r *HeroRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Hero{}, "id = ?", id).Error
}

func (r *HeroRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hero, error) {
	var m model.Hero
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HeroRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hero, error) {
	var models []*model.Hero
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *HeroRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Hero{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
