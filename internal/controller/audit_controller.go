package controller

import (
	"slm-marketing-be/internal/pkg/serverutils"
	"slm-marketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuditController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type auditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) IAuditController {
	return &auditController{
		auditService: auditService,
	}
}

func (c *auditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audit-logs")
	h.Get("", serverutils.AdminMiddleware, c.GetAll)
}

func (c *auditController) GetAll(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 0)
	pageSize := ctx.QueryInt("pageSize", 10)

	res, err := c.auditService.GetAll(ctx.Context(), page, pageSize)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
