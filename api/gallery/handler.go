package gallery

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/api/item"
	"github.com/qwest/portfolioapi/shared/response"
)

type itemLister interface {
	List(ctx context.Context) []item.ItemModel
}

type Handler struct {
	items itemLister
}

func NewHandler(items itemLister) *Handler {
	return &Handler{items: items}
}

// StateFromQuery replays the query parameters through Reduce so the
// reducer's invariants hold no matter what the client sends.
func StateFromQuery(category, tab, filter, enlarged string) State {
	s := DefaultState()
	if category != "" {
		s = Reduce(s, SelectCategory{Category: category})
	}
	if tab != "" {
		s = Reduce(s, SelectSubTab{Tab: SubTab(tab)})
	}
	if filter != "" {
		s = Reduce(s, SelectFilter{Value: filter})
	}
	if enlarged == "true" || enlarged == "1" {
		s = Reduce(s, ToggleEnlarged{})
	}
	return s
}

// GetGallery handles GET /api/gallery.
func (h *Handler) GetGallery(c echo.Context) error {
	s := StateFromQuery(
		c.QueryParam("category"),
		c.QueryParam("tab"),
		c.QueryParam("filter"),
		c.QueryParam("enlarged"),
	)

	items := h.items.List(c.Request().Context())
	return response.SuccessResponse(c, Derive(s, items))
}
