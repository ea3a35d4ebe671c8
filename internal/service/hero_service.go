package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/pkg/logger"
	"slm-marketing-be/internal/repository/specification"
	"slm-marketing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// maxPublishedHeroes caps how many heroes may be live at once.
const maxPublishedHeroes = 5

var (
	ErrHeroNotFound = errors.New("hero not found")

	// ErrPublishLimitReached carries the remediation message surfaced to the
	// admin UI on a 400.
	ErrPublishLimitReached = errors.New("maximum 5 published hero items allowed. please archive an existing hero before publishing a new one")
)

type IHeroService interface {
	GetAll(ctx context.Context, status string) ([]*dto.HeroResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.HeroResponse, error)
	GetPublishedCount(ctx context.Context) (*dto.PublishedCountResponse, error)
	Create(ctx context.Context, req *dto.CreateHeroRequest) (*dto.HeroResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHeroRequest) (*dto.HeroResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type heroService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewHeroService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IHeroService {
	return &heroService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *heroService) GetAll(ctx context.Context, status string) ([]*dto.HeroResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0, 1)
	if filter, ok := entity.ParseStatusFilter(status); ok {
		specs = append(specs, specification.ByStatus{Status: filter})
	}

	heroes, err := uow.HeroRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	sortHeroes(heroes)

	result := make([]*dto.HeroResponse, 0, len(heroes))
	for _, hero := range heroes {
		result = append(result, mapHeroToResponse(hero))
	}
	return result, nil
}

func (s *heroService) GetById(ctx context.Context, id uuid.UUID) (*dto.HeroResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hero, err := uow.HeroRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}
	return mapHeroToResponse(hero), nil
}

func (s *heroService) GetPublishedCount(ctx context.Context) (*dto.PublishedCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.HeroRepository().Count(ctx, specification.ByStatus{Status: entity.StatusPublished})
	if err != nil {
		return nil, err
	}
	return &dto.PublishedCountResponse{Count: count, Max: maxPublishedHeroes}, nil
}

func (s *heroService) Create(ctx context.Context, req *dto.CreateHeroRequest) (*dto.HeroResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.ParseStatus(req.Status)
	if status == entity.StatusPublished {
		if err := s.checkPublishCapacity(ctx, uow); err != nil {
			return nil, err
		}
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	hero := entity.Hero{
		Title:             req.Title,
		Subtitle:          req.Subtitle,
		Badge:             req.Badge,
		SocialProof:       req.SocialProof,
		DisplayOrder:      displayOrder,
		PrimaryCtaLabel:   req.PrimaryCtaLabel,
		PrimaryCtaHref:    req.PrimaryCtaHref,
		SecondaryCtaLabel: req.SecondaryCtaLabel,
		SecondaryCtaHref:  req.SecondaryCtaHref,
		Status:            status,
	}

	if err := uow.HeroRepository().Create(ctx, &hero); err != nil {
		return nil, err
	}

	s.publishChange(ctx, hero.Id, entity.AuditActionCreated)
	return mapHeroToResponse(&hero), nil
}

func (s *heroService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHeroRequest) (*dto.HeroResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Transaction: the capacity check and the save must see the same state.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	hero, err := uow.HeroRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}

	// Capacity gate only applies when moving into PUBLISHED from another state.
	if req.Status != nil {
		requested := entity.ParseStatus(*req.Status)
		if requested == entity.StatusPublished && hero.Status != entity.StatusPublished {
			if err := s.checkPublishCapacity(ctx, uow); err != nil {
				return nil, err
			}
		}
	}

	if req.Title != nil {
		hero.Title = *req.Title
	}
	if req.Subtitle != nil {
		hero.Subtitle = *req.Subtitle
	}
	if req.Badge != nil {
		hero.Badge = *req.Badge
	}
	if req.SocialProof != nil {
		hero.SocialProof = *req.SocialProof
	}
	if req.DisplayOrder != nil {
		hero.DisplayOrder = *req.DisplayOrder
	}
	if req.PrimaryCtaLabel != nil {
		hero.PrimaryCtaLabel = req.PrimaryCtaLabel
	}
	if req.PrimaryCtaHref != nil {
		hero.PrimaryCtaHref = req.PrimaryCtaHref
	}
	if req.SecondaryCtaLabel != nil {
		hero.SecondaryCtaLabel = req.SecondaryCtaLabel
	}
	if req.SecondaryCtaHref != nil {
		hero.SecondaryCtaHref = req.SecondaryCtaHref
	}
	if req.Status != nil {
		hero.Status = entity.ParseStatus(*req.Status)
	}

	if err := uow.HeroRepository().Update(ctx, hero); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishChange(ctx, hero.Id, entity.AuditActionUpdated)
	return mapHeroToResponse(hero), nil
}

func (s *heroService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	hero, err := uow.HeroRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if hero == nil {
		return ErrHeroNotFound
	}

	if err := uow.HeroRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishChange(ctx, id, entity.AuditActionDeleted)
	return nil
}

// checkPublishCapacity reads the published count before the write happens in a
// separate statement. Concurrent publishers can race past this check, so the
// cap is best effort, not a hard guarantee.
func (s *heroService) checkPublishCapacity(ctx context.Context, uow unitofwork.UnitOfWork) error {
	count, err := uow.HeroRepository().Count(ctx, specification.ByStatus{Status: entity.StatusPublished})
	if err != nil {
		return err
	}
	if count >= maxPublishedHeroes {
		s.log.Warn("hero", "Publish capacity reached", map[string]interface{}{"published": count})
		return ErrPublishLimitReached
	}
	return nil
}

func (s *heroService) publishChange(ctx context.Context, id uuid.UUID, action string) {
	event := dto.ContentChangedEvent{
		EntityType: "hero",
		EntityId:   id,
		Action:     action,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("hero", "Failed to marshal content event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("hero", "Failed to publish content event", map[string]interface{}{"error": err.Error()})
	}
}

func mapHeroToResponse(hero *entity.Hero) *dto.HeroResponse {
	return &dto.HeroResponse{
		Id:                hero.Id,
		Title:             hero.Title,
		Subtitle:          hero.Subtitle,
		Badge:             hero.Badge,
		SocialProof:       hero.SocialProof,
		DisplayOrder:      hero.DisplayOrder,
		PrimaryCtaLabel:   hero.PrimaryCtaLabel,
		PrimaryCtaHref:    hero.PrimaryCtaHref,
		SecondaryCtaLabel: hero.SecondaryCtaLabel,
		SecondaryCtaHref:  hero.SecondaryCtaHref,
		Status:            hero.Status.Lower(),
		CreatedAt:         hero.CreatedAt,
		UpdatedAt:         hero.UpdatedAt,
	}
}
