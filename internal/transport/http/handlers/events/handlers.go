package eventshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/platform/events"
	"hrdash/internal/requestctx"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
)

const (
	clientBuffer      = 32
	heartbeatInterval = 15 * time.Second
)

// Subscriber is the part of the store the stream needs.
type Subscriber interface {
	Subscribe(o events.Observer) func()
}

type Handler struct {
	Source    Subscriber
	Heartbeat time.Duration
}

func NewHandler(source Subscriber) *Handler {
	return &Handler{Source: source, Heartbeat: heartbeatInterval}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.handleStream)
}

// handleStream sends one server-sent event per store change until the client
// goes away. A client that falls behind loses events rather than slowing the
// store down.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	flusher, ok := w.(http.Flusher)
	if !ok {
		api.Fail(w, http.StatusInternalServerError, "streaming_unsupported", "streaming not supported", reqID)
		return
	}
	logger := requestctx.Logger(r.Context())

	queue := make(chan events.Event, clientBuffer)
	unsubscribe := h.Source.Subscribe(events.ObserverFunc(func(e events.Event) {
		select {
		case queue <- e:
		default:
			logger.Warn("event stream client lagging, dropping event", "collection", e.Collection)
		}
	}))
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = heartbeatInterval
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case e := <-queue:
			payload, err := events.Encode(e)
			if err != nil {
				logger.Error("encode event failed", "err", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Collection, payload)
			flusher.Flush()
		}
	}
}
