package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/boardkit-dev/boardkit/backend/internal/service"
	"github.com/boardkit-dev/boardkit/shared/config"
	"github.com/boardkit-dev/boardkit/shared/logger"
)

type Handler struct {
	auth       service.AuthService
	boards     service.BoardService
	dispatcher *service.Dispatcher
	db         Pinger
	cfg        *config.Config
}

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(auth service.AuthService, boards service.BoardService, dispatcher *service.Dispatcher, db Pinger, cfg *config.Config) *Handler {
	return &Handler{auth: auth, boards: boards, dispatcher: dispatcher, db: db, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
