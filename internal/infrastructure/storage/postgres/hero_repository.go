package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"heroes/internal/domain/hero"
)

type HeroRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewHeroRepository(pool *pgxpool.Pool, log *slog.Logger) *HeroRepository {
	return &HeroRepository{
		pool: pool,
		log:  log.With("component", "hero_repository"),
	}
}

func (r *HeroRepository) List(ctx context.Context) ([]hero.Hero, error) {
	const query = `SELECT id, name FROM heroes ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list heroes", "error", err)
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	return scanHeroes(rows)
}

func (r *HeroRepository) SearchByName(ctx context.Context, term string) ([]hero.Hero, error) {
	const query = `
		SELECT id, name
		FROM heroes
		WHERE strpos(LOWER(name), $1) > 0
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, strings.ToLower(term))
	if err != nil {
		r.log.Error("failed to search heroes", "term", term, "error", err)
		return nil, fmt.Errorf("search heroes: %w", err)
	}
	defer rows.Close()

	return scanHeroes(rows)
}

func (r *HeroRepository) Get(ctx context.Context, id int) (*hero.Hero, error) {
	const query = `SELECT id, name FROM heroes WHERE id = $1`

	var h hero.Hero
	err := r.pool.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrNotFound
		}
		r.log.Error("failed to get hero", "hero_id", id, "error", err)
		return nil, fmt.Errorf("get hero: %w", err)
	}

	return &h, nil
}

// Create вставляет героя. Явный ID (сид) сдвигает последовательность, чтобы следующие вставки не конфликтовали
func (r *HeroRepository) Create(ctx context.Context, h *hero.Hero) error {
	if h.ID == 0 {
		const query = `INSERT INTO heroes (name) VALUES ($1) RETURNING id`
		if err := r.pool.QueryRow(ctx, query, h.Name).Scan(&h.ID); err != nil {
			r.log.Error("failed to create hero", "name", h.Name, "error", err)
			return fmt.Errorf("create hero: %w", err)
		}
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `INSERT INTO heroes (id, name) VALUES ($1, $2)`, h.ID, h.Name); err != nil {
		r.log.Error("failed to create hero", "hero_id", h.ID, "error", err)
		return fmt.Errorf("create hero: %w", err)
	}

	const syncSeq = `SELECT setval(pg_get_serial_sequence('heroes', 'id'), (SELECT MAX(id) FROM heroes))`
	if _, err := tx.Exec(ctx, syncSeq); err != nil {
		return fmt.Errorf("sync id sequence: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *HeroRepository) Update(ctx context.Context, h *hero.Hero) error {
	const query = `UPDATE heroes SET name = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, h.Name, h.ID)
	if err != nil {
		r.log.Error("failed to update hero", "hero_id", h.ID, "error", err)
		return fmt.Errorf("update hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return hero.ErrNotFound
	}
	return nil
}

func (r *HeroRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM heroes WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete hero", "hero_id", id, "error", err)
		return fmt.Errorf("delete hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return hero.ErrNotFound
	}
	return nil
}

func (r *HeroRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM heroes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count heroes: %w", err)
	}
	return n, nil
}

func scanHeroes(rows pgx.Rows) ([]hero.Hero, error) {
	heroes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (hero.Hero, error) {
		var h hero.Hero
		err := row.Scan(&h.ID, &h.Name)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan heroes: %w", err)
	}
	return heroes, nil
}
