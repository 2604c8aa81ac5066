package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/reports"
	"hrdash/internal/store"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(store *store.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	snapshot, err := h.Store.Snapshot()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, reports.BuildDashboard(snapshot, h.Store.Now()), reqID)
}
