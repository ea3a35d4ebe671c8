package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/pkg/serverutils"
	"slm-marketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubFeatureService struct {
	getPublished          func(ctx context.Context) ([]*dto.FeatureResponse, error)
	getAll                func(ctx context.Context, page, pageSize int, status string) (*dto.FeatureListResponse, error)
	getById               func(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
	create                func(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	update                func(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	delete                func(ctx context.Context, id uuid.UUID) error
	getSectionSettings    func(ctx context.Context) (*dto.SectionSettingResponse, error)
	updateSectionSettings func(ctx context.Context, req *dto.UpdateSectionSettingRequest) (*dto.SectionSettingResponse, error)
}

func (s *stubFeatureService) GetPublished(ctx context.Context) ([]*dto.FeatureResponse, error) {
	return s.getPublished(ctx)
}

func (s *stubFeatureService) GetAll(ctx context.Context, page, pageSize int, status string) (*dto.FeatureListResponse, error) {
	return s.getAll(ctx, page, pageSize, status)
}

func (s *stubFeatureService) GetById(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	return s.getById(ctx, id)
}

func (s *stubFeatureService) Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	return s.create(ctx, req)
}

func (s *stubFeatureService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	return s.update(ctx, id, req)
}

func (s *stubFeatureService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

func (s *stubFeatureService) GetSectionSettings(ctx context.Context) (*dto.SectionSettingResponse, error) {
	return s.getSectionSettings(ctx)
}

func (s *stubFeatureService) UpdateSectionSettings(ctx context.Context, req *dto.UpdateSectionSettingRequest) (*dto.SectionSettingResponse, error) {
	return s.updateSectionSettings(ctx, req)
}

var _ service.IFeatureService = (*stubFeatureService)(nil)

func newFeatureTestApp(svc service.IFeatureService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewFeatureController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestFeaturePublishedIsPublic(t *testing.T) {
	svc := &stubFeatureService{
		getPublished: func(context.Context) ([]*dto.FeatureResponse, error) {
			title := "Search"
			return []*dto.FeatureResponse{{Id: uuid.New(), Title: &title, Status: "published"}}, nil
		},
	}
	app := newFeatureTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/features/published", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var features []dto.FeatureResponse
	assert.NoError(t, json.Unmarshal(raw, &features))
	assert.Len(t, features, 1)
}

func TestFeatureAdminListRequiresAdminAndForwardsQuery(t *testing.T) {
	var gotPage, gotPageSize int
	var gotStatus string
	svc := &stubFeatureService{
		getAll: func(_ context.Context, page, pageSize int, status string) (*dto.FeatureListResponse, error) {
			gotPage, gotPageSize, gotStatus = page, pageSize, status
			return &dto.FeatureListResponse{Features: []*dto.FeatureResponse{}}, nil
		},
	}
	app := newFeatureTestApp(svc)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/features?page=2&pageSize=5&status=draft", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/features?page=2&pageSize=5&status=draft", mintToken(t, "admin"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 5, gotPageSize)
	assert.Equal(t, "draft", gotStatus)
}

func TestFeatureSectionSettingsRouteNotShadowedByIdRoute(t *testing.T) {
	svc := &stubFeatureService{
		getSectionSettings: func(context.Context) (*dto.SectionSettingResponse, error) {
			return &dto.SectionSettingResponse{SectionTitle: "Our features"}, nil
		},
	}
	app := newFeatureTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/features/section-settings", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var settings dto.SectionSettingResponse
	assert.NoError(t, json.Unmarshal(raw, &settings))
	assert.Equal(t, "Our features", settings.SectionTitle)
	assert.Nil(t, settings.Id)
}

func TestFeatureCreateReturnsBareBody(t *testing.T) {
	svc := &stubFeatureService{
		create: func(_ context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
			return &dto.FeatureResponse{Id: uuid.New(), Title: req.Title, Status: "draft"}, nil
		},
	}
	app := newFeatureTestApp(svc)

	title := "Search"
	resp, raw := doRequest(t, app, http.MethodPost, "/api/features", mintToken(t, "admin"), dto.CreateFeatureRequest{Title: &title})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var feature dto.FeatureResponse
	assert.NoError(t, json.Unmarshal(raw, &feature))
	assert.Equal(t, "Search", *feature.Title)
	assert.Equal(t, "draft", feature.Status)
}

func TestFeatureUpdateNotFound(t *testing.T) {
	svc := &stubFeatureService{
		update: func(context.Context, uuid.UUID, *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
			return nil, service.ErrFeatureNotFound
		},
	}
	app := newFeatureTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodPatch, "/api/features/"+uuid.NewString(), mintToken(t, "admin"), dto.UpdateFeatureRequest{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, raw)
}

func TestFeatureUpdateSectionSettingsRequiresAdmin(t *testing.T) {
	svc := &stubFeatureService{
		updateSectionSettings: func(_ context.Context, req *dto.UpdateSectionSettingRequest) (*dto.SectionSettingResponse, error) {
			id := uuid.New()
			return &dto.SectionSettingResponse{Id: &id, SectionTitle: *req.SectionTitle}, nil
		},
	}
	app := newFeatureTestApp(svc)

	title := "Updated"
	body := dto.UpdateSectionSettingRequest{SectionTitle: &title}

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/features/section-settings", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw := doRequest(t, app, http.MethodPatch, "/api/features/section-settings", mintToken(t, "admin"), body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var settings dto.SectionSettingResponse
	assert.NoError(t, json.Unmarshal(raw, &settings))
	assert.Equal(t, "Updated", settings.SectionTitle)
	assert.NotNil(t, settings.Id)
}

func TestFeatureGetByIdRequiresAdmin(t *testing.T) {
	svc := &stubFeatureService{
		getById: func(_ context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
			return &dto.FeatureResponse{Id: id, Status: "draft"}, nil
		},
	}
	app := newFeatureTestApp(svc)

	id := uuid.NewString()
	resp, _ := doRequest(t, app, http.MethodGet, "/api/features/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/features/"+id, mintToken(t, "admin"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feature dto.FeatureResponse
	assert.NoError(t, json.Unmarshal(raw, &feature))
	assert.Equal(t, id, feature.Id.String())
}

func TestFeatureDeleteNotFound(t *testing.T) {
	svc := &stubFeatureService{
		delete: func(context.Context, uuid.UUID) error {
			return service.ErrFeatureNotFound
		},
	}
	app := newFeatureTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodDelete, "/api/features/"+uuid.NewString(), mintToken(t, "admin"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, raw)
}

func TestFeatureGetByIdNotFoundEmptyBody(t *testing.T) {
	svc := &stubFeatureService{
		getById: func(context.Context, uuid.UUID) (*dto.FeatureResponse, error) {
			return nil, service.ErrFeatureNotFound
		},
	}
	app := newFeatureTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/features/"+uuid.NewString(), mintToken(t, "admin"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, raw)
}
