package recruitmenthandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/recruitment"
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
	r.Route("/applicants", func(r chi.Router) {
		r.Get("/", h.handleListApplicants)
		r.Route("/{applicantID}", func(r chi.Router) {
			r.Get("/", h.handleGetApplicant)
			r.Delete("/", h.handleDeleteApplicant)
			r.Put("/stage", h.handleUpdateStage)
		})
	})
}

type stageRequest struct {
	Stage recruitment.Stage `json:"stage" validate:"required,enum"`
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	applicants, err := h.Store.SearchApplicants(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, applicants, reqID)
}

func (h *Handler) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	app, found, err := h.Store.Applicant(chi.URLParam(r, "applicantID"))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	if !found {
		shared.NotFound(w, "applicant", reqID)
		return
	}
	api.Success(w, app, reqID)
}

// handleUpdateStage sets the stage. An unknown applicant id is accepted
// silently, matching the store.
func (h *Handler) handleUpdateStage(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload stageRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	id := chi.URLParam(r, "applicantID")
	if err := h.Store.UpdateApplicantStage(id, payload.Stage); err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	app, found, err := h.Store.Applicant(id)
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	if !found {
		api.NoContent(w, reqID)
		return
	}
	api.Success(w, app, reqID)
}

func (h *Handler) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteApplicant(chi.URLParam(r, "applicantID")); err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.NoContent(w, reqID)
}
