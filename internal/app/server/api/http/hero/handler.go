package hero

import (
	"context"
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"heroes/internal/domain/hero"
)

type Handler struct {
	service    hero.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service hero.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	heroes, err := h.service.List(ctx, input.filter())
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &listOutput{Body: heroes}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	found, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: *found}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	created, err := h.service.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: *created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	updated, err := h.service.Update(ctx, hero.Hero{ID: input.Body.ID, Name: input.Body.Name})
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: *updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*output, error) {
	deleted, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: *deleted}, nil
}

// filter переводит query в Filter: любой непустой id фильтрует, нечисловой не совпадет ни с кем
func (in *listInput) filter() hero.Filter {
	f := hero.Filter{Name: in.Name}
	if in.ID == "" {
		return f
	}

	f.HasID = true
	if id, err := strconv.Atoi(in.ID); err == nil {
		f.ID = id
	}
	return f
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, hero.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, hero.ErrInvalidName), errors.Is(err, hero.ErrInvalidID):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
