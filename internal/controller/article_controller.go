package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

type IArticleController interface {
	RegisterRoutes(api fiber.Router, admin fiber.Router)
	ListPublished(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type articleController struct {
	service service.IArticleService
	logger  logger.ILogger
}

func NewArticleController(svc service.IArticleService, log logger.ILogger) IArticleController {
	return &articleController{service: svc, logger: log}
}

func (c *articleController) RegisterRoutes(api fiber.Router, admin fiber.Router) {
	api.Get("/articles", c.ListPublished)
	api.Get("/articles/:slug", c.GetBySlug)

	h := admin.Group("/articles")
	h.Get("/", c.ListAll)
	h.Post("/", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *articleController) ListPublished(ctx *fiber.Ctx) error {
	res, err := c.service.ListPublished(ctx.Context(), ctx.QueryInt("limit", 20), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Articles", res))
}

func (c *articleController) GetBySlug(ctx *fiber.Ctx) error {
	res, err := c.service.GetBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Article", res))
}

func (c *articleController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.Context(), ctx.QueryInt("limit", 20), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Articles", res))
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateArticleRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Article created", res))
}

func (c *articleController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid article id"))
	}

	var req dto.UpdateArticleRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Article updated", res))
}

func (c *articleController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid article id"))
	}

	if err := c.service.Delete(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Article deleted", nil))
}
