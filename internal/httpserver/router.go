package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinity-lifestyle/storefront/internal/session"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	EventHandler   *EventHTTP
	CartHandler    *CartHTTP
	SearchHandler  *SearchHTTP
	Sessions       *session.Manager
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.GET("/categories", d.CatalogHandler.ListCategories)
	v1.GET("/categories/:slug", d.CatalogHandler.GetCategory)
	v1.GET("/products", d.CatalogHandler.ListProducts)
	v1.GET("/products/:id", d.CatalogHandler.GetProduct)
	v1.GET("/search", d.SearchHandler.SearchProducts)

	v1.GET("/events", d.EventHandler.ListEvents)
	v1.GET("/events/:id", d.EventHandler.GetEvent)

	cart := v1.Group("/cart", d.Sessions.Middleware)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.PATCH("/items", d.CartHandler.UpdateItem)
	cart.DELETE("/items", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.PUT("/drawer", d.CartHandler.SetDrawer)
}
