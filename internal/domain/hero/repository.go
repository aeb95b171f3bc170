package hero

import (
	"context"
)

// Repository - хранилище героев
type Repository interface {
	List(ctx context.Context) ([]Hero, error)
	SearchByName(ctx context.Context, term string) ([]Hero, error)
	Get(ctx context.Context, id int) (*Hero, error)
	// Create сохраняет героя; при нулевом ID хранилище назначает его само
	Create(ctx context.Context, h *Hero) error
	Update(ctx context.Context, h *Hero) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
