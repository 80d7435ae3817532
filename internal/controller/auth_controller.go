package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

type IAuthController interface {
	RegisterRoutes(api fiber.Router, admin fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	RegisterAdmin(ctx *fiber.Ctx) error
	ListAdmins(ctx *fiber.Ctx) error
	DeleteAdmin(ctx *fiber.Ctx) error
	CheckUsername(ctx *fiber.Ctx) error
	CheckEmail(ctx *fiber.Ctx) error
}

type authController struct {
	service    service.IAuthService
	codec      *session.Codec
	cookieName string
	logger     logger.ILogger
}

func NewAuthController(svc service.IAuthService, codec *session.Codec, cookieName string, log logger.ILogger) IAuthController {
	return &authController{service: svc, codec: codec, cookieName: cookieName, logger: log}
}

func (c *authController) RegisterRoutes(api fiber.Router, admin fiber.Router) {
	h := api.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)

	admin.Get("/me", c.Me)
	admin.Post("/register", c.RegisterAdmin)
	admin.Get("/admins", c.ListAdmins)
	admin.Delete("/admins/:id", c.DeleteAdmin)
	admin.Get("/check-username", c.CheckUsername)
	admin.Get("/check-email", c.CheckEmail)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}

	setSessionCookie(ctx, c.cookieName, res.Token, res.CookieMaxAge, fiber.CookieSameSiteLaxMode)
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	// Logout lives on the public group, so the controller verifies the
	// cookie itself to attribute the audit entry to a principal.
	var claims *session.Claims
	if cookie := ctx.Cookies(c.cookieName); cookie != "" {
		claims, _ = c.codec.Verify(cookie)
	}
	c.service.Logout(ctx.Context(), claims, ctx.IP())

	// The cookie is cleared even when the session was already invalid.
	clearSessionCookie(ctx, c.cookieName)
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out successfully", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	claims := serverutils.SessionFromCtx(ctx)
	res, err := c.service.Me(ctx.Context(), claims)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Current session", res))
}

func (c *authController) RegisterAdmin(ctx *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RegisterAdmin(ctx.Context(), serverutils.SessionFromCtx(ctx), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *authController) ListAdmins(ctx *fiber.Ctx) error {
	res, err := c.service.ListAdmins(ctx.Context())
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin accounts", res))
}

func (c *authController) DeleteAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.service.DeleteAdmin(ctx.Context(), serverutils.SessionFromCtx(ctx), id, ctx.IP()); err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin deleted", nil))
}

func (c *authController) CheckUsername(ctx *fiber.Ctx) error {
	username := ctx.Query("username")
	if username == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "username is required"))
	}

	res, err := c.service.CheckUsername(ctx.Context(), username)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Username availability", res))
}

func (c *authController) CheckEmail(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "email is required"))
	}

	res, err := c.service.CheckEmail(ctx.Context(), email)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Email availability", res))
}
