package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"portalcms/internal/infrastructure/events"
	"portalcms/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Admin origins are enforced by the CORS layer; the upgrade itself
	// accepts any origin that got that far.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Subscribe upgrades the connection and streams change events until the
// client disconnects.
func (h *EventsHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Failed to upgrade events connection: %v", err)
		return err
	}
	h.hub.Attach(conn)
	return nil
}
