package corehandler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/reports"
	"hrdash/internal/store"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Store *store.Store
}

func NewHandler(store *store.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/export.xlsx", h.handleExportEmployees)
		r.Get("/{employeeID}", h.handleGetEmployee)
	})
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleListAttendance)
		r.Get("/today", h.handleTodayAttendance)
	})
}

type createEmployeeRequest struct {
	FirstName  string              `json:"firstName" validate:"required"`
	LastName   string              `json:"lastName" validate:"required"`
	Email      string              `json:"email" validate:"required,email"`
	Role       string              `json:"role" validate:"required"`
	Department string              `json:"department" validate:"required"`
	Status     core.EmployeeStatus `json:"status" validate:"required,enum"`
	JoinDate   string              `json:"joinDate" validate:"required"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Store.SearchEmployees(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	page := shared.ParsePagination(r, 0, 500)
	api.Success(w, shared.Page(w, employees, page), reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createEmployeeRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	joinDate, _ := v.Date("joinDate", payload.JoinDate)
	if v.Reject(w, reqID) {
		return
	}

	emp, err := h.Store.CreateEmployee(core.EmployeeInput{
		FirstName:  strings.TrimSpace(payload.FirstName),
		LastName:   strings.TrimSpace(payload.LastName),
		Email:      strings.TrimSpace(payload.Email),
		Role:       strings.TrimSpace(payload.Role),
		Department: strings.TrimSpace(payload.Department),
		Status:     payload.Status,
		JoinDate:   joinDate,
	})
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Created(w, emp, reqID)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, found, err := h.Store.Employee(chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	if !found {
		shared.NotFound(w, "employee", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleExportEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Store.SearchEmployees(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteEmployeesXLSX(&buf, employees); err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		records, err := h.Store.Attendance()
		if err != nil {
			shared.FailError(w, r, err, reqID)
			return
		}
		api.Success(w, records, reqID)
		return
	}

	day, err := shared.ParseDay(raw, h.Store.Now().Location())
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"}})
		return
	}
	records, err := h.Store.AttendanceOn(day)
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

// handleTodayAttendance lists every employee with today's record, if any.
func (h *Handler) handleTodayAttendance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Store.Employees()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	today, err := h.Store.AttendanceOn(h.Store.Now())
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}

	byEmployee := core.AttendanceByEmployee(today)
	out := make([]reports.EmployeeAttendance, 0, len(employees))
	for _, emp := range employees {
		row := reports.EmployeeAttendance{Employee: emp}
		if rec, ok := byEmployee[emp.ID]; ok {
			row.Attendance = &rec
		}
		out = append(out, row)
	}
	api.Success(w, out, reqID)
}
