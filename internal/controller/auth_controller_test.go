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
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	login func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.login(ctx, req)
}

var _ service.IAuthService = (*stubAuthService)(nil)

func newAuthTestApp(svc service.IAuthService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAuthController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestLoginSuccess(t *testing.T) {
	svc := &stubAuthService{
		login: func(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				AccessToken: "token",
				Email:       req.Email,
				FullName:    "Admin",
				Role:        "admin",
			}, nil
		},
	}
	app := newAuthTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope serverutils.BaseResponse[dto.LoginResponse]
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "token", envelope.Data.AccessToken)
	assert.Equal(t, "admin", envelope.Data.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	app := newAuthTestApp(svc)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var envelope serverutils.BaseResponse[any]
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "Invalid email or password", envelope.Message)
}

func TestLoginValidation(t *testing.T) {
	svc := &stubAuthService{}
	app := newAuthTestApp(svc)

	// Malformed email never reaches the service.
	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "not-an-email",
		Password: "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
