package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/reqres-users/internal/httpx"
)

const (
	// Message is reported whenever the process is serving requests.
	Message = "App run successful"

	checkTimeout = 2 * time.Second
)

// Pinger reports whether the backing store answers.
type Pinger func(ctx context.Context) error

// AppStatus is the body of GET /status.
type AppStatus struct {
	Database bool   `json:"database"`
	Status   string `json:"status"`
}

type Handler struct {
	ping Pinger
	log  *slog.Logger
}

func NewHandler(ping Pinger, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{ping: ping, log: log}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/status", h.getStatus) // GET /status
}

// Check runs the store probe with a bounded timeout. An unreachable store is
// reported, not raised.
func (h *Handler) Check(ctx context.Context) AppStatus {
	st := AppStatus{Status: Message}
	if h.ping == nil {
		return st
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		h.log.WarnContext(ctx, "database probe failed", "error", err)
		return st
	}
	st.Database = true
	return st
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Check(r.Context()))
}
