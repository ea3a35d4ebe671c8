// GORM model for the heroes table
package model

import (
	"time"

	"github.com/google/uuid"
)

type Hero struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Subtitle          string    `gorm:"type:text;not null"`
	Badge             string    `gorm:"type:varchar(100);not null"`
	SocialProof       string    `gorm:"type:varchar(500);not null"`
	DisplayOrder      int       `gorm:"not null;default:0"`
	PrimaryCtaLabel   *string   `gorm:"type:varchar(100)"`
	PrimaryCtaHref    *string   `gorm:"type:varchar(500)"`
	SecondaryCtaLabel *string   `gorm:"type:varchar(100)"`
	SecondaryCtaHref  *string   `gorm:"type:varchar(500)"`
	Status            string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Hero) TableName() string {
	return "heroes"
}
