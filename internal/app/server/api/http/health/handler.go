package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Counter - минимальный контракт хранилища для проверки доступности
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	storage    Counter
	kind       string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Counter, kind string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		kind:       kind,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	count, err := h.storage.Count(ctx)
	if err != nil {
		h.log.Error("storage is unavailable", "storage", h.kind, "error", err)
		return nil, huma.Error503ServiceUnavailable("storage is unavailable")
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: h.kind,
			Heroes:  count,
		},
	}, nil
}
