package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

type IPricingController interface {
	RegisterRoutes(api fiber.Router, admin fiber.Router)
	ListActive(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pricingController struct {
	service service.IPricingService
	logger  logger.ILogger
}

func NewPricingController(svc service.IPricingService, log logger.ILogger) IPricingController {
	return &pricingController{service: svc, logger: log}
}

func (c *pricingController) RegisterRoutes(api fiber.Router, admin fiber.Router) {
	api.Get("/pricing", c.ListActive)

	h := admin.Group("/pricing")
	h.Get("/", c.ListAll)
	h.Post("/", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *pricingController) ListActive(ctx *fiber.Ctx) error {
	res, err := c.service.ListActive(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pricing plans", res))
}

func (c *pricingController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pricing plans", res))
}

func (c *pricingController) Create(ctx *fiber.Ctx) error {
	var req dto.UpsertPricingPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Pricing plan created", res))
}

func (c *pricingController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid plan id"))
	}

	var req dto.UpsertPricingPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pricing plan updated", res))
}

func (c *pricingController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid plan id"))
	}

	if err := c.service.Delete(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Pricing plan deleted", nil))
}
