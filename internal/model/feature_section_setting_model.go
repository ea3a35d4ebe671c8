package model

import (
	"time"

	"github.com/google/uuid"
)

type FeatureSectionSetting struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionTitle       string    `gorm:"type:varchar(255)"`
	SectionDescription string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (FeatureSectionSetting) TableName() string {
	return "feature_section_settings"
}
