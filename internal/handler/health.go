package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
		db:     db,
	}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health проверка доступности.
// @Summary      Проверка доступности
// @Tags         health
// @Success      200
// @Failure      503  {object}  utils.ErrorResponse "База недоступна"
// @Router       /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "database ping failed", slog.Any("error", err))
		utils.WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
