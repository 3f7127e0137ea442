package item

import (
	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetItems handles GET /api/items. The read path never errors: a store
// failure serves an empty list.
func (h *Handler) GetItems(c echo.Context) error {
	items := h.service.List(c.Request().Context())
	return response.SuccessResponse(c, items)
}
