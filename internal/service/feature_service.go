package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/pkg/logger"
	"slm-marketing-be/internal/repository/memory"
	"slm-marketing-be/internal/repository/specification"
	"slm-marketing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Defaults shown when no section settings row has ever been saved. They are
// returned as-is, never persisted.
const (
	defaultSectionTitle       = "Everything you need to think smarter"
	defaultSectionDescription = "Powerful features designed to help you make better decisions faster. Built for teams of all sizes."
)

var ErrFeatureNotFound = errors.New("feature not found")

type IFeatureService interface {
	GetPublished(ctx context.Context) ([]*dto.FeatureResponse, error)
	GetAll(ctx context.Context, page, pageSize int, status string) (*dto.FeatureListResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
	Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetSectionSettings(ctx context.Context) (*dto.SectionSettingResponse, error)
	UpdateSectionSettings(ctx context.Context, req *dto.UpdateSectionSettingRequest) (*dto.SectionSettingResponse, error)
}

type featureService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	cache            *memory.ContentCache
	log              logger.ILogger
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	cache *memory.ContentCache,
	log logger.ILogger,
) IFeatureService {
	return &featureService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		cache:            cache,
		log:              log,
	}
}

func (s *featureService) GetPublished(ctx context.Context) ([]*dto.FeatureResponse, error) {
	if cached, found := s.cache.Get(memory.PublishedFeaturesKey); found {
		return cached.([]*dto.FeatureResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx, specification.ByStatus{Status: entity.StatusPublished})
	if err != nil {
		return nil, err
	}
	sortFeatures(features)

	result := make([]*dto.FeatureResponse, 0, len(features))
	for _, feature := range features {
		result = append(result, mapFeatureToResponse(feature))
	}

	s.cache.Set(memory.PublishedFeaturesKey, result)
	return result, nil
}

func (s *featureService) GetAll(ctx context.Context, page, pageSize int, status string) (*dto.FeatureListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// The total order is recomputed over the full set before any slicing.
	sortFeatures(features)

	if filter, ok := entity.ParseStatusFilter(status); ok {
		filtered := make([]*entity.Feature, 0, len(features))
		for _, feature := range features {
			if feature.Status == filter {
				filtered = append(filtered, feature)
			}
		}
		features = filtered
	}

	page, pageSize = normalizePaging(page, pageSize)
	total := len(features)
	start, end, totalPages := paginate(total, page, pageSize)

	result := make([]*dto.FeatureResponse, 0, end-start)
	for _, feature := range features[start:end] {
		result = append(result, mapFeatureToResponse(feature))
	}

	return &dto.FeatureListResponse{
		Features:   result,
		Total:      int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *featureService) GetById(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, ErrFeatureNotFound
	}
	return mapFeatureToResponse(feature), nil
}

func (s *featureService) Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature := entity.Feature{
		Icon:         req.Icon,
		Title:        req.Title,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Status:       entity.ParseStatus(req.Status),
	}

	if err := uow.FeatureRepository().Create(ctx, &feature); err != nil {
		return nil, err
	}

	s.invalidateAndPublish(ctx, feature.Id, entity.AuditActionCreated)
	return mapFeatureToResponse(&feature), nil
}

func (s *featureService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Transaction around the read-modify-write.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, ErrFeatureNotFound
	}

	if req.Icon != nil {
		feature.Icon = req.Icon
	}
	if req.Title != nil {
		feature.Title = req.Title
	}
	if req.Description != nil {
		feature.Description = req.Description
	}
	if req.Status != nil {
		feature.Status = entity.ParseStatus(*req.Status)
	}

	// A provided value of 0 or less clears the custom order.
	if req.DisplayOrder != nil {
		if *req.DisplayOrder <= 0 {
			feature.DisplayOrder = nil
		} else {
			feature.DisplayOrder = req.DisplayOrder
		}
	}

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateAndPublish(ctx, feature.Id, entity.AuditActionUpdated)
	return mapFeatureToResponse(feature), nil
}

func (s *featureService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feature == nil {
		return ErrFeatureNotFound
	}

	if err := uow.FeatureRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidateAndPublish(ctx, id, entity.AuditActionDeleted)
	return nil
}

func (s *featureService) GetSectionSettings(ctx context.Context) (*dto.SectionSettingResponse, error) {
	if cached, found := s.cache.Get(memory.SectionSettingsKey); found {
		return cached.(*dto.SectionSettingResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.SectionSettingRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}

	var result *dto.SectionSettingResponse
	if setting == nil {
		result = &dto.SectionSettingResponse{
			SectionTitle:       defaultSectionTitle,
			SectionDescription: defaultSectionDescription,
		}
	} else {
		result = mapSectionSettingToResponse(setting)
	}

	s.cache.Set(memory.SectionSettingsKey, result)
	return result, nil
}

// UpdateSectionSettings upserts the singleton: the first write creates the
// row, later writes update it; each field is applied only when present.
func (s *featureService) UpdateSectionSettings(ctx context.Context, req *dto.UpdateSectionSettingRequest) (*dto.SectionSettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Transaction: the create-or-update choice must match what was read.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	setting, err := uow.SectionSettingRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}

	existing := setting != nil
	if !existing {
		setting = &entity.FeatureSectionSetting{}
	}

	if req.SectionTitle != nil {
		setting.SectionTitle = *req.SectionTitle
	}
	if req.SectionDescription != nil {
		setting.SectionDescription = *req.SectionDescription
	}

	if existing {
		err = uow.SectionSettingRepository().Update(ctx, setting)
	} else {
		err = uow.SectionSettingRepository().Create(ctx, setting)
	}
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.cache.Invalidate(memory.SectionSettingsKey)
	s.publishChange(ctx, "section_setting", setting.Id, entity.AuditActionUpdated)
	return mapSectionSettingToResponse(setting), nil
}

func (s *featureService) invalidateAndPublish(ctx context.Context, id uuid.UUID, action string) {
	s.cache.Invalidate(memory.PublishedFeaturesKey)
	s.publishChange(ctx, "feature", id, action)
}

func (s *featureService) publishChange(ctx context.Context, entityType string, id uuid.UUID, action string) {
	event := dto.ContentChangedEvent{
		EntityType: entityType,
		EntityId:   id,
		Action:     action,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("feature", "Failed to marshal content event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("feature", "Failed to publish content event", map[string]interface{}{"error": err.Error()})
	}
}

func mapFeatureToResponse(feature *entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:           feature.Id,
		Icon:         feature.Icon,
		Title:        feature.Title,
		Description:  feature.Description,
		DisplayOrder: feature.DisplayOrder,
		Status:       feature.Status.Lower(),
		CreatedAt:    feature.CreatedAt,
		UpdatedAt:    feature.UpdatedAt,
	}
}

func mapSectionSettingToResponse(setting *entity.FeatureSectionSetting) *dto.SectionSettingResponse {
	id := setting.Id
	return &dto.SectionSettingResponse{
		Id:                 &id,
		SectionTitle:       setting.SectionTitle,
		SectionDescription: setting.SectionDescription,
	}
}
