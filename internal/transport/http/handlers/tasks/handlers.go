package taskshandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/reports"
	"hrdash/internal/domain/tasks"
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
	r.Get("/tasks", h.handleListTasks)
	r.Post("/tasks", h.handleCreateTask)
}

type createTaskRequest struct {
	Title        string `json:"title" validate:"required"`
	DaysUntilDue int    `json:"daysUntilDue" validate:"gte=0,lte=3650"`
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	list, err := h.Store.Tasks()
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Success(w, reports.WithDaysLeft(list, h.Store.Now()), reqID)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createTaskRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	payload.Title = strings.TrimSpace(payload.Title)
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	task, err := h.Store.CreateTask(payload.Title, payload.DaysUntilDue)
	if err != nil {
		shared.FailError(w, r, err, reqID)
		return
	}
	api.Created(w, reports.TaskDue{Task: task, DaysLeft: tasks.DaysLeft(task.DueDate, h.Store.Now())}, reqID)
}
