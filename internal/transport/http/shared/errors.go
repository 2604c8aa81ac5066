package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/store"
	"hrdash/internal/transport/http/api"
)

// FailError maps a store or domain error to its response. Unknown errors are
// logged and reported as internal.
func FailError(w http.ResponseWriter, r *http.Request, err error, requestID string) {
	switch {
	case errors.Is(err, store.ErrStoreNotInitialized):
		api.Fail(w, http.StatusServiceUnavailable, "store_unavailable", "data store is not available", requestID)
	case errors.Is(err, leave.ErrRequestNotFound), errors.Is(err, payroll.ErrEntryNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, leave.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), requestID)
	case errors.Is(err, recruitment.ErrInvalidStage):
		FailValidation(w, requestID, []ValidationIssue{{Field: "stage", Reason: "must be one of the allowed values"}})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}

func NotFound(w http.ResponseWriter, what, requestID string) {
	api.Fail(w, http.StatusNotFound, "not_found", what+" not found", requestID)
}
