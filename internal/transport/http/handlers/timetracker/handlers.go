package timetrackerhandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/timetracker"
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
	r.Get("/time-trackers", h.handleListEntries)
	r.Post("/time-trackers", h.handleCreateEntry)
}

// createEntryRequest keeps duration as the caller wrote it.
type createEntryRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Project    string `json:"project" validate:"required"`
	Task       string `json:"task" validate:"required"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Duration   string `json:"duration"`
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" {
		entries, err := h.Store.TimeTrackerEntries()
		if err != nil {
			shared.FailError(w, r, err, reqID)
			return
		}
		api.Success(w, entries, reqID)
		return
	}

	status, err := timetracker.ParseStatus(raw)
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "status", Reason: "must be one of the allowed values"}})
		return
	}
	entries, err := h.Store.TimeTrackerEntriesByStatus(status)
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createEntryRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	start := h.Store.Now()
	if strings.TrimSpace(payload.StartTime) != "" {
		start, _ = v.Date("startTime", payload.StartTime)
	}
	end, _ := v.OptionalDate("endTime", payload.EndTime)
	if end != nil {
		v.DateOrder("startTime", start, "endTime", *end)
	}
	if v.Reject(w, reqID) {
		return
	}

	entry, err := h.Store.CreateTimeTrackerEntry(timetracker.Input{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		Project:    strings.TrimSpace(payload.Project),
		Task:       strings.TrimSpace(payload.Task),
		StartTime:  start,
		EndTime:    end,
		Duration:   strings.TrimSpace(payload.Duration),
	})
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Created(w, entry, reqID)
}
