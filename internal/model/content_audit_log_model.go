package model

import (
	"time"

	"github.com/google/uuid"
)

type ContentAuditLog struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityType string    `gorm:"type:varchar(50);not null;index"`
	EntityId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"type:varchar(20);not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ContentAuditLog) TableName() string {
	return "content_audit_logs"
}
