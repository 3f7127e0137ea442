package admin

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

// Without the explicit confirmation field the handler redirects back
// before any store access; the nil service proves nothing is touched.
func TestDeleteItem_WithoutConfirmation(t *testing.T) {
	h := NewHandler(nil)

	form := url.Values{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/items/x/delete", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("x")

	require.NoError(t, h.DeleteItem(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/admin?error=")
}
