package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/infinity-lifestyle/storefront/internal/logging"
	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/repo"
	"github.com/infinity-lifestyle/storefront/internal/service"
)

type EventHTTP struct {
	Svc *service.CatalogService
}

func (h *EventHTTP) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.list")

	filter := repo.EventFilter{
		Status: models.EventStatus(c.QueryParam("status")),
		Brand:  models.Brand(c.QueryParam("brand")),
	}
	if v := c.QueryParam("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			l.Warn("list_events_bad_featured", "status", 400, "value", v)
			return c.JSON(http.StatusBadRequest, "featured must be a boolean")
		}
		filter.Featured = &featured
	}

	events, err := h.Svc.ListEvents(ctx, filter)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("list_events_bad_filter", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, "status must be upcoming or past")
		}
		l.Error("list_events_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHTTP) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.get")

	id := c.Param("id")
	event, err := h.Svc.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_event_not_found", "status", 404, "id", id)
			return c.JSON(http.StatusNotFound, "event not found")
		}
		l.Error("get_event_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, event)
}
