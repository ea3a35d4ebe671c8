package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeatureSectionSetting holds the heading shown above the feature list.
// Only the first-created row is ever read or updated.
type FeatureSectionSetting struct {
	Id                 uuid.UUID
	SectionTitle       string
	SectionDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
