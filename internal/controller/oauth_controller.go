package controller

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/gate"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

// stateCookieName holds the CSRF state between the redirect to the
// identity provider and its callback.
const stateCookieName = "oauth-state"

const stateCookieMaxAge = 600

type IOAuthController interface {
	RegisterRoutes(api fiber.Router)
	Redirect(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service    service.IOAuthService
	cookieName string
}

func NewOAuthController(svc service.IOAuthService, cookieName string) IOAuthController {
	return &oauthController{service: svc, cookieName: cookieName}
}

func (c *oauthController) RegisterRoutes(api fiber.Router) {
	h := api.Group("/auth")
	h.Get("/:provider", c.Redirect)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Redirect(ctx *fiber.Ctx) error {
	url, state, err := c.service.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	// Lax, not Strict: the cookie must be sent on the top-level
	// navigation back from the provider.
	ctx.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   stateCookieMaxAge,
		Expires:  time.Now().Add(stateCookieMaxAge * time.Second),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Redirect(url, fiber.StatusFound)
}

// Callback lands the browser back from the identity provider, so errors
// redirect to the login page instead of returning bare JSON.
func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return ctx.Redirect(gate.LoginPath+"?error=oauth_cancelled", fiber.StatusFound)
	}

	// The state must round-trip through the cookie set on Redirect. A
	// mismatch means the callback was not initiated by this server.
	expected := ctx.Cookies(stateCookieName)
	clearSessionCookie(ctx, stateCookieName)
	got := ctx.Query("state")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return ctx.Redirect(gate.LoginPath+"?error=oauth_failed", fiber.StatusFound)
	}

	res, err := c.service.HandleCallback(ctx.Context(), ctx.Params("provider"), code, ctx.IP())
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return ctx.Redirect(gate.LoginPath+"?error=not_authorized", fiber.StatusFound)
		}
		return ctx.Redirect(gate.LoginPath+"?error=oauth_failed", fiber.StatusFound)
	}

	setSessionCookie(ctx, c.cookieName, res.Token, res.CookieMaxAge, fiber.CookieSameSiteStrictMode)
	return ctx.Redirect(gate.DashboardPrefix, fiber.StatusFound)
}
