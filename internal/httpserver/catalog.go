package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinity-lifestyle/storefront/internal/logging"
	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/repo"
	"github.com/infinity-lifestyle/storefront/internal/service"
	"github.com/infinity-lifestyle/storefront/internal/transport"
	"github.com/infinity-lifestyle/storefront/internal/util"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_categories")

	cats, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("list_categories_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *CatalogHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_category")

	slug := c.Param("slug")
	cat, err := h.Svc.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_category_not_found", "status", 404, "slug", slug)
			return c.JSON(http.StatusNotFound, "category not found")
		}
		l.Error("get_category_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	filter := repo.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		Brand:        models.Brand(c.QueryParam("brand")),
	}

	total, items, err := h.Svc.ListProducts(ctx, filter, offset, limit)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id := c.Param("id")
	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_not_found", "status", 404, "id", id)
			return c.JSON(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, product)
}
