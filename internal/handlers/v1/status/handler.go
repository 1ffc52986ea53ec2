package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/cashbook-server/internal/logging"
)

const pingTimeout = 2 * time.Second

// dbPinger is the interface for checking store reachability.
type dbPinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB dbPinger
}

func NewHandler(db dbPinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}
