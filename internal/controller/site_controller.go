package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

// ISiteController exposes the remaining marketing-site content: team,
// testimonials, FAQ, settings, and the admin dashboard stats endpoint.
type ISiteController interface {
	RegisterRoutes(api fiber.Router, admin fiber.Router)
}

type siteController struct {
	service        service.ISiteService
	articleService service.IArticleService
	logger         logger.ILogger
}

func NewSiteController(svc service.ISiteService, articleService service.IArticleService, log logger.ILogger) ISiteController {
	return &siteController{service: svc, articleService: articleService, logger: log}
}

func (c *siteController) RegisterRoutes(api fiber.Router, admin fiber.Router) {
	api.Get("/team", c.listTeam)
	api.Get("/testimonials", c.listTestimonials)
	api.Get("/faqs", c.listFaqs)
	api.Get("/settings", c.getSettings)

	admin.Post("/team", c.upsertTeamMember)
	admin.Put("/team/:id", c.upsertTeamMember)
	admin.Delete("/team/:id", c.deleteTeamMember)

	admin.Post("/testimonials", c.upsertTestimonial)
	admin.Put("/testimonials/:id", c.upsertTestimonial)
	admin.Delete("/testimonials/:id", c.deleteTestimonial)

	admin.Post("/faqs", c.upsertFaq)
	admin.Put("/faqs/:id", c.upsertFaq)
	admin.Delete("/faqs/:id", c.deleteFaq)

	admin.Put("/settings", c.updateSetting)
	admin.Get("/stats", c.dashboardStats)
}

func (c *siteController) listTeam(ctx *fiber.Ctx) error {
	res, err := c.service.ListTeam(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Team members", res))
}

func (c *siteController) upsertTeamMember(ctx *fiber.Ctx) error {
	var req dto.UpsertTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if idStr := ctx.Params("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
		}
		req.Id = id
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertTeamMember(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Team member saved", res))
}

func (c *siteController) deleteTeamMember(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}
	if err := c.service.DeleteTeamMember(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Team member deleted", nil))
}

func (c *siteController) listTestimonials(ctx *fiber.Ctx) error {
	res, err := c.service.ListTestimonials(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Testimonials", res))
}

func (c *siteController) upsertTestimonial(ctx *fiber.Ctx) error {
	var req dto.UpsertTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if idStr := ctx.Params("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
		}
		req.Id = id
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertTestimonial(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Testimonial saved", res))
}

func (c *siteController) deleteTestimonial(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}
	if err := c.service.DeleteTestimonial(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Testimonial deleted", nil))
}

func (c *siteController) listFaqs(ctx *fiber.Ctx) error {
	res, err := c.service.ListFaqs(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQs", res))
}

func (c *siteController) upsertFaq(ctx *fiber.Ctx) error {
	var req dto.UpsertFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if idStr := ctx.Params("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
		}
		req.Id = id
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertFaq(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ saved", res))
}

func (c *siteController) deleteFaq(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}
	if err := c.service.DeleteFaq(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("FAQ deleted", nil))
}

func (c *siteController) getSettings(ctx *fiber.Ctx) error {
	res, err := c.service.GetSettings(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Site settings", res))
}

func (c *siteController) updateSetting(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateSetting(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Setting updated", res))
}

func (c *siteController) dashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.DashboardStats(ctx.Context(), c.articleService)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}
