package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sixtyseconds/ai-development-hub/app/lifecycle"
)

// EventsHandler receives host-page lifecycle beacons and republishes them
// to the in-process notifier so the cache and auth container can react.
type EventsHandler struct {
	notifier *lifecycle.Notifier
	logger   *slog.Logger
}

// NewEventsHandler creates a new lifecycle events handler
func NewEventsHandler(notifier *lifecycle.Notifier, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// Publish handles POST /v1/events/:event
func (h *EventsHandler) Publish(c echo.Context) error {
	var event lifecycle.Event
	switch c.Param("event") {
	case string(lifecycle.EventNavigated):
		event = lifecycle.EventNavigated
	case string(lifecycle.EventVisible):
		event = lifecycle.EventVisible
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown lifecycle event"})
	}

	h.notifier.Publish(event)
	return c.NoContent(http.StatusAccepted)
}
