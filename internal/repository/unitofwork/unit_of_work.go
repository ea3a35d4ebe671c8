package unitofwork

import (
	"context"

	"slm-marketing-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	HeroRepository() contract.HeroRepository
	FeatureRepository() contract.FeatureRepository
	SectionSettingRepository() contract.SectionSettingRepository
	UserRepository() contract.UserRepository
	AuditLogRepository() contract.AuditLogRepository
}
