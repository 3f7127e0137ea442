package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, h *Handler, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	form.Set("password", password)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	return rec
}

func TestLoginHandler_SetsCookieAndRedirects(t *testing.T) {
	h := NewHandler(NewService("test-secret", "hunter2"), false, nil)

	rec := postLogin(t, h, "hunter2")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h := NewHandler(NewService("test-secret", "hunter2"), false, nil)

	rec := postLogin(t, h, "nope")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?error=password", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginHandler_MissingConfiguration(t *testing.T) {
	h := NewHandler(NewService("test-secret", ""), false, nil)

	rec := postLogin(t, h, "anything")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?error=config", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutHandler_ExpiresCookie(t *testing.T) {
	h := NewHandler(NewService("test-secret", "hunter2"), false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
