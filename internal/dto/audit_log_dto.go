package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	Id         uuid.UUID `json:"id"`
	EntityType string    `json:"entityType"`
	EntityId   uuid.UUID `json:"entityId"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

type AuditLogListResponse struct {
	Logs       []*AuditLogResponse `json:"logs"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
}
