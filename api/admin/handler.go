package admin

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/api/item"
)

// Handler serves the admin form posts. All routes sit behind the admin
// gate; failures redirect back to the panel with the store message
// carried verbatim for inline display.
type Handler struct {
	items *item.Service
}

func NewHandler(items *item.Service) *Handler {
	return &Handler{items: items}
}

func formInput(c echo.Context) FormInput {
	return FormInput{
		Category:     c.FormValue("category"),
		Title:        c.FormValue("title"),
		Subtitle:     c.FormValue("subtitle"),
		Description:  c.FormValue("description"),
		TagsRaw:      c.FormValue("tags"),
		LinksRaw:     c.FormValue("links"),
		YearRaw:      c.FormValue("year"),
		Publication:  c.FormValue("publication"),
		Domain:       c.FormValue("domain"),
		Collaborator: c.FormValue("collaborator"),
		Thumbnail:    c.FormValue("thumbnail"),
		PeriodStart:  c.FormValue("period_start"),
		PeriodEnd:    c.FormValue("period_end"),
	}
}

// CreateItem handles POST /admin/items.
func (h *Handler) CreateItem(c echo.Context) error {
	payload, err := BuildPayload(formInput(c))
	if err != nil {
		return backWithError(c, err)
	}
	if _, err := h.items.Create(c.Request().Context(), payload); err != nil {
		return backWithError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// UpdateItem handles POST /admin/items/:id.
func (h *Handler) UpdateItem(c echo.Context) error {
	payload, err := BuildPayload(formInput(c))
	if err != nil {
		return backWithError(c, err)
	}
	if err := h.items.Update(c.Request().Context(), c.Param("id"), payload); err != nil {
		return backWithError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteItem handles POST /admin/items/:id/delete. The form must carry
// the explicit confirmation; without it nothing is removed.
func (h *Handler) DeleteItem(c echo.Context) error {
	if c.FormValue("confirm") != "true" {
		return c.Redirect(http.StatusSeeOther, "/admin?error="+url.QueryEscape("deletion requires confirmation"))
	}
	if err := h.items.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return backWithError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func backWithError(c echo.Context, err error) error {
	return c.Redirect(http.StatusSeeOther, "/admin?error="+url.QueryEscape(err.Error()))
}
