// Domain entity for feature-list entries
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a feature-list entry on the marketing site.
// DisplayOrder nil means "use default ordering": such entries sort after all
// explicitly ordered ones, newest first.
type Feature struct {
	Id           uuid.UUID
	Icon         *string
	Title        *string
	Description  *string
	DisplayOrder *int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
