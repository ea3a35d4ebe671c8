package dto

import (
	"time"

	"github.com/google/uuid"
)

// ContentChangedEvent is published on the in-process bus after every
// successful content mutation and consumed into the audit trail.
type ContentChangedEvent struct {
	EntityType string    `json:"entityType"` // hero, feature, section_setting
	EntityId   uuid.UUID `json:"entityId"`
	Action     string    `json:"action"` // created, updated, deleted
	OccurredAt time.Time `json:"occurredAt"`
}
