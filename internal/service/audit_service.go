package service

import (
	"context"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/repository/specification"
	"slm-marketing-be/internal/repository/unitofwork"
)

type IAuditService interface {
	GetAll(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error)
}

type auditService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuditService(uowFactory unitofwork.RepositoryFactory) IAuditService {
	return &auditService{
		uowFactory: uowFactory,
	}
}

func (s *auditService) GetAll(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, pageSize = normalizePaging(page, pageSize)

	total, err := uow.AuditLogRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := uow.AuditLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: page * pageSize},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		result = append(result, &dto.AuditLogResponse{
			Id:         entry.Id,
			EntityType: entry.EntityType,
			EntityId:   entry.EntityId,
			Action:     entry.Action,
			OccurredAt: entry.OccurredAt,
		})
	}

	_, _, totalPages := paginate(int(total), page, pageSize)

	return &dto.AuditLogListResponse{
		Logs:       result,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
