package specification

import (
	"slm-marketing-be/internal/entity"

	"gorm.io/gorm"
)

// ByStatus filters content rows by publication status
type ByStatus struct {
	Status entity.Status
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByEntityType filters audit rows by the entity type they describe
type ByEntityType struct {
	EntityType string
}

func (s ByEntityType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_type = ?", s.EntityType)
}
