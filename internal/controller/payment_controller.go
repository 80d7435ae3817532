package controller

import (
	"crypto/subtle"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/invoicing"
)

type IPaymentController interface {
	RegisterRoutes(api fiber.Router, admin fiber.Router)
	CreateInvoice(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	ListTransactions(ctx *fiber.Ctx) error
}

type paymentController struct {
	service       service.IPaymentService
	callbackToken string
	logger        logger.ILogger
}

func NewPaymentController(svc service.IPaymentService, callbackToken string, log logger.ILogger) IPaymentController {
	return &paymentController{service: svc, callbackToken: callbackToken, logger: log}
}

func (c *paymentController) RegisterRoutes(api fiber.Router, admin fiber.Router) {
	h := api.Group("/payment")
	h.Post("/invoice", c.CreateInvoice)
	h.Post("/webhook", c.Webhook)
	h.Get("/invoice/:id/status", c.GetStatus)

	admin.Get("/transactions", c.ListTransactions)
}

func (c *paymentController) CreateInvoice(ctx *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateInvoice(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "failed to create invoice"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Invoice created", res))
}

// Webhook receives provider callbacks. The shared-secret header is
// checked before the body is even parsed; without it nothing touches
// storage. A storage failure returns 5xx so the provider retries.
func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	token := ctx.Get("x-callback-token")
	if c.callbackToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(c.callbackToken)) != 1 {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}

	var payload invoicing.WebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Body parsing failed: %v\n", err)
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	if err := c.service.HandleWebhook(ctx.Context(), &payload); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Reconcile failed for invoice=%s: %v\n", payload.Id, err)
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

func (c *paymentController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.GetInvoiceStatus(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice status", res))
}

func (c *paymentController) ListTransactions(ctx *fiber.Ctx) error {
	res, err := c.service.ListTransactions(ctx.Context(), ctx.QueryInt("limit", 20), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Transactions", res))
}
