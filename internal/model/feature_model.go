// GORM model for the features table
package model

import (
	"time"

	"github.com/google/uuid"
)

type Feature struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Icon         *string   `gorm:"type:varchar(50)"`
	Title        *string   `gorm:"type:varchar(255)"`
	Description  *string   `gorm:"type:text"`
	DisplayOrder *int      // null means default date-based ordering
	Status       string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
