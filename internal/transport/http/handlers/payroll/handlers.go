package payrollhandler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/payroll"
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
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleListPayroll)
		r.Post("/", h.handleCreatePayroll)
		r.Get("/summary", h.handleSummary)
		r.Get("/export.xlsx", h.handleExport)
		r.Get("/{entryID}/payslip.pdf", h.handlePayslip)
	})
}

// createPayrollRequest carries amounts as pointers so a missing base salary
// is told apart from zero. Negative amounts are accepted as given.
type createPayrollRequest struct {
	EmployeeID string         `json:"employeeId" validate:"required"`
	Month      string         `json:"month"`
	BaseSalary *float64       `json:"baseSalary" validate:"required"`
	Overtime   float64        `json:"overtime"`
	Deductions float64        `json:"deductions"`
	Status     payroll.Status `json:"status" validate:"omitempty,enum"`
}

func (h *Handler) handleListPayroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Store.SearchPayroll(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, rows, reqID)
}

func (h *Handler) handleCreatePayroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createPayrollRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	month := h.Store.Now()
	if strings.TrimSpace(payload.Month) != "" {
		month, _ = v.Date("month", payload.Month)
	}
	if v.Reject(w, reqID) {
		return
	}

	entry, err := h.Store.CreatePayrollEntry(payroll.Input{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		Month:      month,
		BaseSalary: *payload.BaseSalary,
		Overtime:   payload.Overtime,
		Deductions: payload.Deductions,
		Status:     payload.Status,
	})
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Created(w, entry, reqID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Store.PayrollEntries()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, payroll.Summarize(entries), reqID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rows, err := h.Store.SearchPayroll(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}

	var buf bytes.Buffer
	if err := reports.WritePayrollXLSX(&buf, rows); err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="payroll.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	row, err := h.Store.PayrollRow(chi.URLParam(r, "entryID"))
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}

	var buf bytes.Buffer
	if err := payroll.WritePayslip(&buf, row); err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="payslip-%s.pdf"`, row.ID))
	_, _ = w.Write(buf.Bytes())
}
