package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

type IActivityController interface {
	RegisterRoutes(admin fiber.Router)
	List(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
	logger  logger.ILogger
}

func NewActivityController(svc service.IActivityService, log logger.ILogger) IActivityController {
	return &activityController{service: svc, logger: log}
}

func (c *activityController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/activity", c.List)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.QueryInt("limit", 20), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Activity logs", res))
}
