package service

import (
	"context"
	"encoding/json"
	"time"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/repository/contract"
	"slm-marketing-be/internal/repository/specification"
	"slm-marketing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. The repos interpret the
// specifications the services actually send (ByID, ByStatus, ByEmail);
// anything else is ignored.

type fakeHeroRepository struct {
	heroes []*entity.Hero
}

func (r *fakeHeroRepository) Create(_ context.Context, hero *entity.Hero) error {
	hero.Id = uuid.New()
	hero.CreatedAt = time.Now()
	hero.UpdatedAt = hero.CreatedAt
	copied := *hero
	r.heroes = append(r.heroes, &copied)
	return nil
}

func (r *fakeHeroRepository) Update(_ context.Context, hero *entity.Hero) error {
	for i, h := range r.heroes {
		if h.Id == hero.Id {
			hero.UpdatedAt = time.Now()
			copied := *hero
			r.heroes[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeHeroRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i, h := range r.heroes {
		if h.Id == id {
			r.heroes = append(r.heroes[:i], r.heroes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeHeroRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Hero, error) {
	for _, h := range r.matching(specs) {
		copied := *h
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeHeroRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Hero, error) {
	matched := r.matching(specs)
	result := make([]*entity.Hero, 0, len(matched))
	for _, h := range matched {
		copied := *h
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeHeroRepository) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.matching(specs))), nil
}

func (r *fakeHeroRepository) matching(specs []specification.Specification) []*entity.Hero {
	matched := make([]*entity.Hero, 0, len(r.heroes))
	for _, h := range r.heroes {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				ok = ok && h.Id == s.ID
			case specification.ByStatus:
				ok = ok && h.Status == s.Status
			}
		}
		if ok {
			matched = append(matched, h)
		}
	}
	return matched
}

type fakeFeatureRepository struct {
	features []*entity.Feature
}

func (r *fakeFeatureRepository) Create(_ context.Context, feature *entity.Feature) error {
	feature.Id = uuid.New()
	feature.CreatedAt = time.Now()
	feature.UpdatedAt = feature.CreatedAt
	copied := *feature
	r.features = append(r.features, &copied)
	return nil
}

func (r *fakeFeatureRepository) Update(_ context.Context, feature *entity.Feature) error {
	for i, f := range r.features {
		if f.Id == feature.Id {
			feature.UpdatedAt = time.Now()
			copied := *feature
			r.features[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeFeatureRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i, f := range r.features {
		if f.Id == id {
			r.features = append(r.features[:i], r.features[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFeatureRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	for _, f := range r.matching(specs) {
		copied := *f
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeFeatureRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	matched := r.matching(specs)
	result := make([]*entity.Feature, 0, len(matched))
	for _, f := range matched {
		copied := *f
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeFeatureRepository) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.matching(specs))), nil
}

func (r *fakeFeatureRepository) matching(specs []specification.Specification) []*entity.Feature {
	matched := make([]*entity.Feature, 0, len(r.features))
	for _, f := range r.features {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				ok = ok && f.Id == s.ID
			case specification.ByStatus:
				ok = ok && f.Status == s.Status
			}
		}
		if ok {
			matched = append(matched, f)
		}
	}
	return matched
}

type fakeSectionSettingRepository struct {
	setting *entity.FeatureSectionSetting
}

func (r *fakeSectionSettingRepository) Create(_ context.Context, setting *entity.FeatureSectionSetting) error {
	setting.Id = uuid.New()
	setting.CreatedAt = time.Now()
	setting.UpdatedAt = setting.CreatedAt
	copied := *setting
	r.setting = &copied
	return nil
}

func (r *fakeSectionSettingRepository) Update(_ context.Context, setting *entity.FeatureSectionSetting) error {
	setting.UpdatedAt = time.Now()
	copied := *setting
	r.setting = &copied
	return nil
}

func (r *fakeSectionSettingRepository) FindFirst(_ context.Context) (*entity.FeatureSectionSetting, error) {
	if r.setting == nil {
		return nil, nil
	}
	copied := *r.setting
	return &copied, nil
}

type fakeUserRepository struct {
	users []*entity.User
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	user.Id = uuid.New()
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				ok = ok && u.Id == s.ID
			case specification.ByEmail:
				ok = ok && u.Email == s.Email
			}
		}
		if ok {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeAuditLogRepository struct {
	logs []*entity.ContentAuditLog
}

func (r *fakeAuditLogRepository) Create(_ context.Context, log *entity.ContentAuditLog) error {
	log.Id = uuid.New()
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeAuditLogRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ContentAuditLog, error) {
	result := make([]*entity.ContentAuditLog, 0, len(r.logs))
	for _, l := range r.logs {
		copied := *l
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeAuditLogRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.logs)), nil
}

type fakeUnitOfWork struct {
	heroes   *fakeHeroRepository
	features *fakeFeatureRepository
	settings *fakeSectionSettingRepository
	users    *fakeUserRepository
	audits   *fakeAuditLogRepository

	inTx      bool
	commits   int
	rollbacks int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		heroes:   &fakeHeroRepository{},
		features: &fakeFeatureRepository{},
		settings: &fakeSectionSettingRepository{},
		users:    &fakeUserRepository{},
		audits:   &fakeAuditLogRepository{},
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.inTx = false
	u.commits++
	return nil
}

// Rollback only counts when a transaction is open, mirroring the real
// implementation where the deferred rollback after a commit is a no-op.
func (u *fakeUnitOfWork) Rollback() error {
	if u.inTx {
		u.inTx = false
		u.rollbacks++
	}
	return nil
}

func (u *fakeUnitOfWork) HeroRepository() contract.HeroRepository       { return u.heroes }
func (u *fakeUnitOfWork) FeatureRepository() contract.FeatureRepository { return u.features }
func (u *fakeUnitOfWork) SectionSettingRepository() contract.SectionSettingRepository {
	return u.settings
}
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return u.users }
func (u *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return u.audits }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

var _ unitofwork.RepositoryFactory = (*fakeRepositoryFactory)(nil)

type fakePublisher struct {
	events []dto.ContentChangedEvent
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	var event dto.ContentChangedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	p.events = append(p.events, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
