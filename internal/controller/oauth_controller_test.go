package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/gate"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
)

type stubOAuthService struct {
	url         string
	state       string
	callbackRes *dto.LoginResponse
	callbackErr error

	callbackCalls int
}

func (s *stubOAuthService) GetLoginURL(provider string) (string, string, error) {
	if provider != "google" {
		return "", "", errors.New("unsupported provider")
	}
	return s.url, s.state, nil
}

func (s *stubOAuthService) HandleCallback(ctx context.Context, provider, code, ip string) (*dto.LoginResponse, error) {
	s.callbackCalls++
	if s.callbackErr != nil {
		return nil, s.callbackErr
	}
	return s.callbackRes, nil
}

func newOAuthTestApp(svc *stubOAuthService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewOAuthController(svc, testCookieName).RegisterRoutes(api)
	return app
}

func namedCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestOAuthRedirect_SetsStateCookie(t *testing.T) {
	svc := &stubOAuthService{url: "https://accounts.google.com/o/oauth2/auth?state=abc123", state: "abc123"}
	app := newOAuthTestApp(svc)

	req := httptest.NewRequest("GET", "/api/auth/google", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, svc.url, resp.Header.Get("Location"))

	cookie := namedCookie(resp, stateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "abc123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestOAuthCallback_RejectsStateMismatch(t *testing.T) {
	svc := &stubOAuthService{}
	app := newOAuthTestApp(svc)

	// No state cookie at all.
	req := httptest.NewRequest("GET", "/api/auth/google/callback?code=authcode&state=abc123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, gate.LoginPath+"?error=oauth_failed", resp.Header.Get("Location"))

	// Cookie present but not matching the query.
	req = httptest.NewRequest("GET", "/api/auth/google/callback?code=authcode&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "abc123"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, gate.LoginPath+"?error=oauth_failed", resp.Header.Get("Location"))

	assert.Zero(t, svc.callbackCalls)
}

func TestOAuthCallback_Success(t *testing.T) {
	svc := &stubOAuthService{
		callbackRes: &dto.LoginResponse{
			Admin:        dto.AdminDTO{Id: uuid.New(), Username: "owner", IsAdmin: true},
			Token:        "signed-token",
			CookieMaxAge: 604800,
		},
	}
	app := newOAuthTestApp(svc)

	req := httptest.NewRequest("GET", "/api/auth/google/callback?code=authcode&state=abc123", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "abc123"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, gate.DashboardPrefix, resp.Header.Get("Location"))
	assert.Equal(t, 1, svc.callbackCalls)

	session := namedCookie(resp, testCookieName)
	require.NotNil(t, session)
	assert.Equal(t, "signed-token", session.Value)
	assert.Equal(t, 604800, session.MaxAge)

	// The state cookie is single-use.
	state := namedCookie(resp, stateCookieName)
	require.NotNil(t, state)
	assert.Empty(t, state.Value)
	assert.LessOrEqual(t, state.MaxAge, 0)
}

func TestOAuthCallback_CancelledAndUnauthorized(t *testing.T) {
	svc := &stubOAuthService{}
	app := newOAuthTestApp(svc)

	req := httptest.NewRequest("GET", "/api/auth/google/callback", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, gate.LoginPath+"?error=oauth_cancelled", resp.Header.Get("Location"))

	svc.callbackErr = service.ErrForbidden
	req = httptest.NewRequest("GET", "/api/auth/google/callback?code=authcode&state=abc123", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "abc123"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, gate.LoginPath+"?error=not_authorized", resp.Header.Get("Location"))
}
