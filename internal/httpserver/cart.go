package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinity-lifestyle/storefront/internal/logging"
	"github.com/infinity-lifestyle/storefront/internal/service"
	"github.com/infinity-lifestyle/storefront/internal/session"
	"github.com/infinity-lifestyle/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	view, err := h.Svc.Get(ctx, sid)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	view, notice, err := h.Svc.AddToCart(ctx, sid, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_item_invalid", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_item_not_found", "status", 404, "product_id", req.ProductID)
			return c.JSON(http.StatusNotFound, "product not found")
		default:
			l.Error("add_item_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, "internal error")
		}
	}

	l.Info("cart_item_added", "product_id", req.ProductID, "size", req.Size, "quantity", req.Quantity)
	return c.JSON(http.StatusCreated, map[string]any{
		"cart":   view,
		"notice": notice,
	})
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	view, err := h.Svc.UpdateQuantity(ctx, sid, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		l.Error("update_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	var req transport.RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_item_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	view, err := h.Svc.RemoveFromCart(ctx, sid, req.ProductID, req.Size)
	if err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	if err := h.Svc.ClearCart(ctx, sid); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_cleared")
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) SetDrawer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_drawer")

	sid, err := session.ID(c)
	if err != nil {
		l.Error("cart_session_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cart session unavailable")
	}

	var req transport.DrawerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_drawer_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	view, err := h.Svc.SetDrawer(ctx, sid, req.Open)
	if err != nil {
		l.Error("set_drawer_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}
