package handler

import (
	"net/http"

	"github.com/yogi-fashion/embroidery-service/internal/api"
	"github.com/yogi-fashion/embroidery-service/internal/middleware"
	"github.com/yogi-fashion/embroidery-service/internal/settings"
)

// SettingsHandler exposes the theme preference
type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Theme handles GET and PUT of the current theme. The response is the
// caller's AppContext.
func (h *SettingsHandler) Theme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.respond(w, r, h.store.Load())

	case http.MethodPut:
		var req struct {
			Theme settings.Theme `json:"theme"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if !req.Theme.Valid() {
			api.BadRequest(w, "theme must be \"dark\" or \"light\"")
			return
		}
		if err := h.store.Save(req.Theme); err != nil {
			api.Error(w, err)
			return
		}
		h.respond(w, r, req.Theme)

	default:
		api.MethodNotAllowed(w)
	}
}

// Toggle flips the theme
func (h *SettingsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	theme, err := h.store.Toggle()
	if err != nil {
		api.Error(w, err)
		return
	}
	h.respond(w, r, theme)
}

func (h *SettingsHandler) respond(w http.ResponseWriter, r *http.Request, theme settings.Theme) {
	appCtx := settings.AppContext{Theme: theme}
	if id, ok := middleware.GetUserID(r.Context()); ok {
		appCtx = appCtx.WithUser(id)
	}
	api.RespondJSON(w, http.StatusOK, appCtx)
}
