package handler

import (
	"net/http"

	"github.com/yogi-fashion/embroidery-service/internal/api"
	"github.com/yogi-fashion/embroidery-service/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, summary)
}
