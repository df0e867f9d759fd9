package websockets

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/yogi-fashion/embroidery-service/internal/api"
)

// NewUpgrader returns an upgrader that accepts the given origins, or any
// origin when none are configured.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
		},
		Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
			log.Warn().Err(reason).Int("status", status).Msg("websocket upgrade failed")
			api.RespondJSON(w, status, api.APIError{Detail: reason.Error()})
		},
	}
}
