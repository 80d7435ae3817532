package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
)

// SessionLocalsKey is where RequireAdmin stores the verified claims for
// downstream handlers.
const SessionLocalsKey = "session_claims"

// RequireAdmin guards an API route group with the session cookie. It is
// independent of the page-level routing guard: API handlers never assume
// the gate ran. Missing or invalid cookies get 401, a valid session
// without the admin flag gets 403.
func RequireAdmin(codec *session.Codec, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		cookie := ctx.Cookies(cookieName)
		if cookie == "" {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(fiber.StatusUnauthorized, "authentication required"))
		}

		claims, err := codec.Verify(cookie)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid session"))
		}

		if !claims.IsAdmin {
			return ctx.Status(fiber.StatusForbidden).
				JSON(ErrorResponse(fiber.StatusForbidden, "admin access required"))
		}

		ctx.Locals(SessionLocalsKey, claims)
		return ctx.Next()
	}
}

// SessionFromCtx returns the claims stored by RequireAdmin, or nil when
// the route was not guarded.
func SessionFromCtx(ctx *fiber.Ctx) *session.Claims {
	claims, _ := ctx.Locals(SessionLocalsKey).(*session.Claims)
	return claims
}
