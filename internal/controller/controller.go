package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

// errStatus maps service sentinel errors onto HTTP codes. Anything
// unrecognized is a 500.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrTooManyAttempts):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the JSON envelope for a failed service call.
// Sentinel errors keep their message; anything unrecognized is logged
// server-side and the client only sees a generic 500.
func respondError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	code := errStatus(err)
	if code == fiber.StatusInternalServerError {
		if log != nil {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, "internal server error"))
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}

// Password logins get SameSite=Lax so the cookie survives top-level
// navigation back from external pages; federated logins and the
// logout-clear use Strict.
func setSessionCookie(ctx *fiber.Ctx, name, token string, maxAge int, sameSite string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		HTTPOnly: true,
		Secure:   true,
		SameSite: sameSite,
	})
}

func clearSessionCookie(ctx *fiber.Ctx, name string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
