package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"heroes/internal/domain/hero"
)

// Storage - хранилище героев в SQLite. Схема создается миграциями (migrations/sqlite)
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &Storage{
		db:  db,
		log: log.With("component", "sqlite_storage"),
	}, nil
}

// DSN строка подключения для драйвера go-sqlite3
func DSN(path string) string {
	return path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
}

// MigrationURL адрес базы для golang-migrate
func MigrationURL(path string) string {
	return "sqlite3://" + DSN(path)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) List(ctx context.Context) ([]hero.Hero, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM heroes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	return scanHeroes(rows)
}

// SearchByName фильтрует в Go: lower() в SQLite приводит к нижнему регистру только ASCII
func (s *Storage) SearchByName(ctx context.Context, term string) ([]hero.Hero, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]hero.Hero, 0, len(all))
	for _, h := range all {
		if h.MatchesName(term) {
			found = append(found, h)
		}
	}
	return found, nil
}

func (s *Storage) Get(ctx context.Context, id int) (*hero.Hero, error) {
	var h hero.Hero
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM heroes WHERE id = ?`, id).
		Scan(&h.ID, &h.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, hero.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения героя: %w", err)
	}
	return &h, nil
}

func (s *Storage) Create(ctx context.Context, h *hero.Hero) error {
	var (
		res sql.Result
		err error
	)
	if h.ID != 0 {
		res, err = s.db.ExecContext(ctx, `INSERT INTO heroes (id, name) VALUES (?, ?)`, h.ID, h.Name)
	} else {
		res, err = s.db.ExecContext(ctx, `INSERT INTO heroes (name) VALUES (?)`, h.Name)
	}
	if err != nil {
		return fmt.Errorf("ошибка сохранения героя: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("ошибка получения ID: %w", err)
	}
	h.ID = int(id)

	s.log.Debug("hero inserted", "hero_id", h.ID)
	return nil
}

func (s *Storage) Update(ctx context.Context, h *hero.Hero) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE heroes SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, h.Name, h.ID)
	if err != nil {
		return fmt.Errorf("ошибка обновления героя: %w", err)
	}
	return expectAffected(res)
}

func (s *Storage) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM heroes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления героя: %w", err)
	}
	return expectAffected(res)
}

func (s *Storage) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM heroes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка подсчета героев: %w", err)
	}
	return n, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа строк: %w", err)
	}
	if n == 0 {
		return hero.ErrNotFound
	}
	return nil
}

func scanHeroes(rows *sql.Rows) ([]hero.Hero, error) {
	heroes := make([]hero.Hero, 0)
	for rows.Next() {
		var h hero.Hero
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования героя: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return heroes, nil
}
