package gate

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
)

const (
	AdminRoot       = "/admin"
	DashboardPrefix = "/admin/dashboard"
	LoginPath       = "/admin/login"
)

// SecurityHeaders is the baseline set attached to every page response.
var SecurityHeaders = map[string]string{
	"X-Frame-Options":         "DENY",
	"X-Content-Type-Options":  "nosniff",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": "default-src 'self'; img-src 'self' data: https:; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'",
}

type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
	ActionAllowWithHeaders
)

type Decision struct {
	Action     Action
	RedirectTo string
	Headers    map[string]string
}

var staticPrefixes = []string{"/assets/", "/uploads/", "/static/", "/favicon"}

func isStaticAsset(path string) bool {
	for _, p := range staticPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Decide evaluates the routing guard for one request. It is a pure
// function of the path and the (already verified) session claims; claims
// must be nil when the cookie was absent or failed verification.
//
// Rules are evaluated in order:
//  1. static assets and API paths pass through untouched (API handlers
//     enforce their own authorization),
//  2. the dashboard requires an admin session, otherwise the browser is
//     redirected to the login page,
//  3. the bare admin root is canonicalized to the dashboard,
//  4. everything else passes with baseline security headers.
func Decide(path string, claims *session.Claims) Decision {
	if isStaticAsset(path) || strings.HasPrefix(path, "/api/") {
		return Decision{Action: ActionAllow}
	}

	if strings.HasPrefix(path, DashboardPrefix) {
		if claims == nil || !claims.IsAdmin {
			return Decision{Action: ActionRedirect, RedirectTo: LoginPath}
		}
		return Decision{Action: ActionAllowWithHeaders, Headers: SecurityHeaders}
	}

	if path == AdminRoot || path == AdminRoot+"/" {
		return Decision{Action: ActionRedirect, RedirectTo: DashboardPrefix}
	}

	return Decision{Action: ActionAllowWithHeaders, Headers: SecurityHeaders}
}

// Middleware adapts Decide to Fiber. It runs ahead of every route,
// verifying the session cookie itself so downstream handlers never have
// to trust that the gate ran.
func Middleware(codec *session.Codec, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var claims *session.Claims
		if cookie := ctx.Cookies(cookieName); cookie != "" {
			// Verification failure is equivalent to no cookie at all.
			claims, _ = codec.Verify(cookie)
		}

		decision := Decide(ctx.Path(), claims)
		switch decision.Action {
		case ActionRedirect:
			return ctx.Redirect(decision.RedirectTo, fiber.StatusFound)
		case ActionAllowWithHeaders:
			for k, v := range decision.Headers {
				ctx.Set(k, v)
			}
		}
		return ctx.Next()
	}
}
