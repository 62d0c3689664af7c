package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/transport"
)

type productListResponse struct {
	Data []models.Product   `json:"data"`
	Meta transport.PageMeta `json:"meta"`
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/categories", nil)
	require.NoError(t, env.Catalog.ListCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	require.Len(t, cats, 13)
}

func TestGetCategory(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/categories/tshirt", nil)
	c.SetParamNames("slug")
	c.SetParamValues("tshirt")
	require.NoError(t, env.Catalog.GetCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cat))
	require.Equal(t, "tshirt", cat.Slug)
}

func TestGetCategoryNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/categories/no-such", nil)
	c.SetParamNames("slug")
	c.SetParamValues("no-such")
	require.NoError(t, env.Catalog.GetCategory(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?size=100", nil)
	require.NoError(t, env.Catalog.ListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(117), resp.Meta.Total)
	require.Len(t, resp.Data, 100)
	require.True(t, resp.Meta.HasNext)
	require.False(t, resp.Meta.HasPrev)
}

func TestListProductsFiltered(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?category=tshirt&brand=nova", nil)
	require.NoError(t, env.Catalog.ListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(3), resp.Meta.Total)
	for _, p := range resp.Data {
		require.Equal(t, "tshirt", p.CategorySlug)
		require.Equal(t, models.BrandNova, p.Brand)
	}
}

func TestListProductsPagination(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?page=2&size=50", nil)
	require.NoError(t, env.Catalog.ListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 50)
	require.Equal(t, 2, resp.Meta.Page)
	require.True(t, resp.Meta.HasPrev)
	require.True(t, resp.Meta.HasNext)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/tshirt-nova-1", nil)
	c.SetParamNames("id")
	c.SetParamValues("tshirt-nova-1")
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, "tshirt-nova-1", p.ID)
	require.Equal(t, models.BrandNova, p.Brand)
	require.Greater(t, p.OriginalPrice, p.DiscountedPrice)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/no-such", nil)
	c.SetParamNames("id")
	c.SetParamValues("no-such")
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEvents(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events", nil)
	require.NoError(t, env.Events.ListEvents(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 8)
}

func TestListEventsByStatus(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events?status=past", nil)
	require.NoError(t, env.Events.ListEvents(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	for _, ev := range events {
		require.Equal(t, models.EventPast, ev.Status)
	}
}

func TestListEventsBadStatus(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events?status=soon", nil)
	require.NoError(t, env.Events.ListEvents(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEventsFeatured(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events?featured=true", nil)
	require.NoError(t, env.Events.ListEvents(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 4)
	for _, ev := range events {
		require.True(t, ev.Featured)
	}
}

func TestGetEvent(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events/nova-launch-2026", nil)
	c.SetParamNames("id")
	c.SetParamValues("nova-launch-2026")
	require.NoError(t, env.Events.GetEvent(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var ev models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	require.Equal(t, "nova-launch-2026", ev.ID)
	require.NotEmpty(t, ev.Schedule)
	require.NotEmpty(t, ev.Tickets)
}

func TestGetEventNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/events/no-such", nil)
	c.SetParamNames("id")
	c.SetParamValues("no-such")
	require.NoError(t, env.Events.GetEvent(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchProducts(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/search?q=Watch", nil)
	require.NoError(t, env.Search.SearchProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		require.Contains(t, p.Name, "Watch")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/search", nil)
	require.NoError(t, env.Search.SearchProducts(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
