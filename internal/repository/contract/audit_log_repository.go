package contract

import (
	"context"

	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/repository/specification"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.ContentAuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentAuditLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
