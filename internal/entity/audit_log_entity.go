package entity

import (
	"time"

	"github.com/google/uuid"
)

// Content change actions recorded in the audit trail.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// ContentAuditLog is one entry of the content change history, written
// asynchronously by the event consumer.
type ContentAuditLog struct {
	Id         uuid.UUID
	EntityType string // hero, feature, section_setting
	EntityId   uuid.UUID
	Action     string
	OccurredAt time.Time
	CreatedAt  time.Time
}
