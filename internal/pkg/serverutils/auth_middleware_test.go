package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
)

func newGuardedApp(t *testing.T, codec *session.Codec) *fiber.App {
	t.Helper()
	app := fiber.New()
	admin := app.Group("/api/admin", RequireAdmin(codec, "admin-session"))
	admin.Get("/me", func(ctx *fiber.Ctx) error {
		claims := SessionFromCtx(ctx)
		require.NotNil(t, claims)
		return ctx.JSON(SuccessResponse("ok", claims.Username))
	})
	return app
}

func TestRequireAdmin_MissingCookie(t *testing.T) {
	app := newGuardedApp(t, session.NewCodec("test-secret"))

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_TamperedCookie(t *testing.T) {
	codec := session.NewCodec("test-secret")
	app := newGuardedApp(t, codec)

	token, err := session.NewCodec("other-secret").Issue(&session.Claims{
		AdminId:  uuid.New(),
		Username: "mallory",
		IsAdmin:  true,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_NonAdminSession(t *testing.T) {
	codec := session.NewCodec("test-secret")
	app := newGuardedApp(t, codec)

	token, err := codec.Issue(&session.Claims{
		AdminId:  uuid.New(),
		Username: "viewer",
		IsAdmin:  false,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_ValidAdminSession(t *testing.T) {
	codec := session.NewCodec("test-secret")
	app := newGuardedApp(t, codec)

	token, err := codec.Issue(&session.Claims{
		AdminId:   uuid.New(),
		Username:  "owner",
		IsAdmin:   true,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: "admin-session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
