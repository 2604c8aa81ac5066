package leavehandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/requestctx"
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
	r.Route("/day-off-requests", func(r chi.Router) {
		r.Get("/", h.handleListRequests)
		r.Post("/", h.handleCreateRequest)
		r.Post("/{requestID}/approve", h.handleApprove)
		r.Post("/{requestID}/reject", h.handleReject)
	})
}

type createRequest struct {
	EmployeeID string     `json:"employeeId" validate:"required"`
	Type       leave.Type `json:"type" validate:"required,enum"`
	StartDate  string     `json:"startDate" validate:"required"`
	EndDate    string     `json:"endDate" validate:"required"`
	Reason     string     `json:"reason"`
}

// requestRow is a day-off request with its employee's name and length.
type requestRow struct {
	leave.DayOffRequest
	EmployeeName string  `json:"employeeName"`
	Days         float64 `json:"days"`
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	requests, err := h.Store.DayOffRequests()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	employees, err := h.Store.Employees()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}

	status := leave.Status(strings.TrimSpace(r.URL.Query().Get("status")))
	index := core.IndexEmployees(employees)
	out := make([]requestRow, 0, len(requests))
	for _, req := range requests {
		if status != "" && req.Status != status {
			continue
		}
		row := requestRow{DayOffRequest: req}
		if emp, ok := index[req.EmployeeID]; ok {
			row.EmployeeName = emp.FullName()
		}
		if days, err := leave.CalculateDays(req.StartDate, req.EndDate); err == nil {
			row.Days = days
		}
		out = append(out, row)
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, reqID) {
		return
	}

	req, err := h.Store.CreateDayOffRequest(leave.DayOffInput{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		Type:       payload.Type,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(payload.Reason),
	})
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Created(w, req, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Store.ApproveDayOffRequest)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Store.RejectDayOffRequest)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, fn func(id string) (leave.DayOffRequest, error)) {
	reqID := middleware.GetRequestID(r.Context())
	req, err := fn(chi.URLParam(r, "requestID"))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	requestctx.Logger(r.Context()).Info("day-off request decided", "id", req.ID, "status", req.Status)
	api.Success(w, req, reqID)
}
