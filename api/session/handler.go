package session

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/shared/auditlog"
)

// Handler serves the admin login and logout form posts. Failures
// redirect back to the login page with an error code rendered inline
// by the login template.
type Handler struct {
	service *Service
	secure  bool
	audit   *auditlog.Logger
}

func NewHandler(service *Service, secure bool, audit *auditlog.Logger) *Handler {
	return &Handler{service: service, secure: secure, audit: audit}
}

// Login handles POST /admin/login.
func (h *Handler) Login(c echo.Context) error {
	password := c.FormValue("password")

	token, err := h.service.Login(password)
	if err != nil {
		code := "password"
		if errors.Is(err, ErrLoginDisabled) {
			code = "config"
		}
		if h.audit != nil {
			_ = h.audit.Warn("session.login", "login rejected", map[string]interface{}{
				"reason": err.Error(),
				"ip":     c.RealIP(),
			})
		}
		return c.Redirect(http.StatusSeeOther, "/admin/login?error="+url.QueryEscape(code))
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	if h.audit != nil {
		_ = h.audit.Info("session.login", "admin logged in", map[string]interface{}{
			"ip": c.RealIP(),
		})
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles POST /admin/logout by expiring the session cookie.
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
