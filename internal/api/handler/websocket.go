package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yogi-fashion/embroidery-service/internal/api"
	"github.com/yogi-fashion/embroidery-service/internal/middleware"
	"github.com/yogi-fashion/embroidery-service/internal/websockets"
)

// WebSocketHandler upgrades authenticated requests onto the change feed
type WebSocketHandler struct {
	hub      *websockets.Hub
	upgrader *websocket.Upgrader
}

func NewWebSocketHandler(hub *websockets.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		upgrader: websockets.NewUpgrader(allowedOrigins),
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.RespondJSON(w, http.StatusUnauthorized, api.APIError{Detail: "authorization required"})
		return
	}

	// If upgrading fails, the upgrader has already written the error to the response
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	websockets.ServeWs(h.hub, conn, userID)
}
