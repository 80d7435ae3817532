package gate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
)

func adminClaims() *session.Claims {
	return &session.Claims{AdminId: uuid.New(), Username: "admin", IsAdmin: true}
}

func TestDecideStaticAndAPIPassThrough(t *testing.T) {
	for _, path := range []string{
		"/assets/logo.svg",
		"/uploads/cover.jpg",
		"/favicon.ico",
		"/api/articles",
		"/api/admin/articles",
	} {
		d := Decide(path, nil)
		assert.Equal(t, ActionAllow, d.Action, "path %s", path)
		assert.Empty(t, d.Headers)
	}
}

func TestDecideDashboardRequiresAdminSession(t *testing.T) {
	// No session → login redirect, not a bare 401.
	d := Decide("/admin/dashboard/articles", nil)
	assert.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, LoginPath, d.RedirectTo)

	// Valid session without the admin flag is still rejected.
	d = Decide("/admin/dashboard", &session.Claims{AdminId: uuid.New(), Username: "viewer"})
	assert.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, LoginPath, d.RedirectTo)

	// Admin session passes with headers attached.
	d = Decide("/admin/dashboard/settings", adminClaims())
	assert.Equal(t, ActionAllowWithHeaders, d.Action)
	assert.Equal(t, "DENY", d.Headers["X-Frame-Options"])
}

func TestDecideAdminRootCanonicalized(t *testing.T) {
	for _, path := range []string{"/admin", "/admin/"} {
		d := Decide(path, adminClaims())
		assert.Equal(t, ActionRedirect, d.Action, "path %s", path)
		assert.Equal(t, DashboardPrefix, d.RedirectTo)
	}
}

func TestDecidePublicPagesGetSecurityHeaders(t *testing.T) {
	for _, path := range []string{"/", "/pricing", "/blog/some-post", "/admin/login"} {
		d := Decide(path, nil)
		assert.Equal(t, ActionAllowWithHeaders, d.Action, "path %s", path)
		assert.Equal(t, "nosniff", d.Headers["X-Content-Type-Options"])
		assert.NotEmpty(t, d.Headers["Content-Security-Policy"])
		assert.NotEmpty(t, d.Headers["Referrer-Policy"])
	}
}
