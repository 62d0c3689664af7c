package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinity-lifestyle/storefront/internal/logging"
	"github.com/infinity-lifestyle/storefront/internal/search"
	"github.com/infinity-lifestyle/storefront/internal/util"
)

type SearchHTTP struct {
	Svc *search.Service
}

func (h *SearchHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.products")

	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, products, err := h.Svc.Search(ctx, q, offset, limit)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":    total,
		"products": products,
	})
}
