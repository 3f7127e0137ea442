package upload

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/api/session"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

// Result is the wire shape of the upload endpoint: exactly one of URL
// and Error is set.
type Result struct {
	Success bool    `json:"success"`
	URL     *string `json:"url"`
	Error   *string `json:"error"`
}

type tokenVerifier interface {
	Verify(token string) bool
}

// Handler serves POST /api/upload. The route sits outside the admin
// prefix, so it verifies the session cookie itself.
type Handler struct {
	service  *Service
	verifier tokenVerifier
}

func NewHandler(service *Service, verifier tokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Upload handles a multipart image upload.
func (h *Handler) Upload(c echo.Context) (err error) {
	// Anything unexpected becomes a generic failure, never a crash.
	defer func() {
		if r := recover(); r != nil {
			zaplogger.Error("upload panicked", zaplogger.Fields{"panic": r})
			err = failure(c, http.StatusInternalServerError, "upload failed")
		}
	}()

	cookie, cookieErr := c.Cookie(session.CookieName)
	if cookieErr != nil {
		return failure(c, http.StatusUnauthorized, "authentication required")
	}
	if !h.verifier.Verify(cookie.Value) {
		return failure(c, http.StatusUnauthorized, "session expired")
	}

	fileHeader, formErr := c.FormFile("file")
	if formErr != nil {
		return failure(c, http.StatusBadRequest, ErrEmptyFile.Error())
	}

	src, openErr := fileHeader.Open()
	if openErr != nil {
		return failure(c, http.StatusBadRequest, "could not read file")
	}
	defer src.Close()

	url, upErr := h.service.Upload(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
	)
	if upErr != nil {
		if errors.Is(upErr, ErrEmptyFile) || errors.Is(upErr, ErrFileTooLarge) {
			return failure(c, http.StatusBadRequest, upErr.Error())
		}
		return failure(c, http.StatusInternalServerError, upErr.Error())
	}

	return c.JSON(http.StatusOK, Result{Success: true, URL: &url})
}

func failure(c echo.Context, status int, message string) error {
	return c.JSON(status, Result{Success: false, Error: &message})
}
