package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mp-codespace/masterprima-site-sub001/internal/bootstrap"
	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
	"github.com/mp-codespace/masterprima-site-sub001/internal/server"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/database"
)

func TestAdminAuth(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed an admin account directly.
	adminPass := "admin123!"
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	adminHashStr := string(adminHash)

	adminId := uuid.New()
	username := "it-admin-" + adminId.String()[:8]
	admin := model.Admin{
		Id:           adminId,
		Username:     username,
		PasswordHash: &adminHashStr,
		IsAdmin:      true,
		AuthProvider: "email",
	}
	require.NoError(t, db.Create(&admin).Error)
	defer db.Where("id = ?", adminId).Delete(&model.Admin{})

	// 1. Wrong password is rejected without a cookie.
	resp := doLogin(t, app, username, "not-the-password")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, findCookie(resp, cfg.Auth.SessionCookieName))

	// 2. Correct password issues the session cookie.
	resp = doLogin(t, app, username, adminPass)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := findCookie(resp, cfg.Auth.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	// 3. The cookie authorizes the admin API.
	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	// 4. Without the cookie the same route is closed.
	req = httptest.NewRequest("GET", "/api/admin/me", nil)
	noCookieResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, noCookieResp.StatusCode)
}

func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
