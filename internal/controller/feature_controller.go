package controller

import (
	"errors"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/pkg/serverutils"
	"slm-marketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	GetPublished(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetSectionSettings(ctx *fiber.Ctx) error
	UpdateSectionSettings(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{
		featureService: featureService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features")
	// Literal routes register before /:id so the param route does not
	// capture them.
	h.Get("/published", c.GetPublished)
	h.Get("/section-settings", c.GetSectionSettings)
	h.Get("", serverutils.AdminMiddleware, c.GetAll)
	h.Get("/:id", serverutils.AdminMiddleware, c.GetById)
	h.Post("", serverutils.AdminMiddleware, c.Create)
	h.Patch("/section-settings", serverutils.AdminMiddleware, c.UpdateSectionSettings)
	h.Patch("/:id", serverutils.AdminMiddleware, c.Update)
	h.Delete("/:id", serverutils.AdminMiddleware, c.Delete)
}

func (c *featureController) GetPublished(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetPublished(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 0)
	pageSize := ctx.QueryInt("pageSize", 10)
	status := ctx.Query("status", "")

	res, err := c.featureService.GetAll(ctx.Context(), page, pageSize, status)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) GetById(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	res, err := c.featureService.GetById(ctx.Context(), id)
	if errors.Is(err, service.ErrFeatureNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	var req dto.UpdateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.Update(ctx.Context(), id, &req)
	if errors.Is(err, service.ErrFeatureNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	err = c.featureService.Delete(ctx.Context(), id)
	if errors.Is(err, service.ErrFeatureNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Feature deleted successfully", nil))
}

func (c *featureController) GetSectionSettings(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetSectionSettings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) UpdateSectionSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateSectionSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.UpdateSectionSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
