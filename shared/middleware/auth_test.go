package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwest/portfolioapi/api/session"
)

func gatedEcho(t *testing.T, svc *session.Service) *echo.Echo {
	t.Helper()

	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	adminGroup := e.Group("/admin")
	adminGroup.Use(AdminGate(svc))
	adminGroup.GET("/login", ok)
	adminGroup.GET("", ok)
	adminGroup.GET("/items", ok)
	return e
}

func TestAdminGate_LoginPageExempt(t *testing.T) {
	e := gatedEcho(t, session.NewService("test-secret", "pw"))

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminGate_NoCookieRedirects(t *testing.T) {
	e := gatedEcho(t, session.NewService("test-secret", "pw"))

	for _, path := range []string{"/admin", "/admin/items"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, "path %s", path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), "path %s", path)
	}
}

func TestAdminGate_InvalidCookieRedirects(t *testing.T) {
	e := gatedEcho(t, session.NewService("test-secret", "pw"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminGate_WrongSecretCookieRedirects(t *testing.T) {
	other := session.NewService("other-secret", "pw")
	token, err := other.Issue()
	require.NoError(t, err)

	e := gatedEcho(t, session.NewService("test-secret", "pw"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminGate_ValidCookiePassesThrough(t *testing.T) {
	svc := session.NewService("test-secret", "pw")
	token, err := svc.Issue()
	require.NoError(t, err)

	e := gatedEcho(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
