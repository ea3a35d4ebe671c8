package controller

import (
	"errors"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/pkg/serverutils"
	"slm-marketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHeroController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	GetPublishedCount(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type heroController struct {
	heroService service.IHeroService
}

func NewHeroController(heroService service.IHeroService) IHeroController {
	return &heroController{
		heroService: heroService,
	}
}

func (c *heroController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/heroes")
	// /count/published must register before /:id so it is not swallowed by
	// the param route.
	h.Get("", c.GetAll)
	h.Get("/count/published", c.GetPublishedCount)
	h.Get("/:id", c.GetById)
	h.Post("", serverutils.AdminMiddleware, c.Create)
	h.Patch("/:id", serverutils.AdminMiddleware, c.Update)
	h.Delete("/:id", serverutils.AdminMiddleware, c.Delete)
}

func (c *heroController) GetAll(ctx *fiber.Ctx) error {
	status := ctx.Query("status", "published")

	res, err := c.heroService.GetAll(ctx.Context(), status)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *heroController) GetById(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid hero id")
	}

	res, err := c.heroService.GetById(ctx.Context(), id)
	if errors.Is(err, service.ErrHeroNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *heroController) GetPublishedCount(ctx *fiber.Ctx) error {
	res, err := c.heroService.GetPublishedCount(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *heroController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHeroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.heroService.Create(ctx.Context(), &req)
	if errors.Is(err, service.ErrPublishLimitReached) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Hero created successfully", res))
}

func (c *heroController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid hero id")
	}

	var req dto.UpdateHeroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.heroService.Update(ctx.Context(), id, &req)
	if errors.Is(err, service.ErrHeroNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if errors.Is(err, service.ErrPublishLimitReached) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Hero updated successfully", res))
}

func (c *heroController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid hero id")
	}

	err = c.heroService.Delete(ctx.Context(), id)
	if errors.Is(err, service.ErrHeroNotFound) {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Hero deleted successfully", nil))
}
