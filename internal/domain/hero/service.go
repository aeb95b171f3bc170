package hero

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// Service содержит бизнес-логику работы с героями
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, filter Filter) ([]Hero, error)
	Find(ctx context.Context, id int) (*Hero, error)
	Create(ctx context.Context, name string) (*Hero, error)
	Update(ctx context.Context, h Hero) (*Hero, error)
	Delete(ctx context.Context, id int) (*Hero, error)
	Seed(ctx context.Context, heroes []Hero) (int, error)
}

// NewService creates a new hero service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "hero_service"),
	}
}

// List возвращает героев: по ID (0 или 1 запись), по подстроке имени или всех
func (s *Service) List(ctx context.Context, filter Filter) ([]Hero, error) {
	if filter.HasID {
		if filter.ID <= 0 {
			return []Hero{}, nil
		}
		h, err := s.repo.Get(ctx, filter.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return []Hero{}, nil
			}
			s.log.Error("failed to get hero", "hero_id", filter.ID, "error", err)
			return nil, fmt.Errorf("get hero: %w", err)
		}
		return []Hero{*h}, nil
	}

	if filter.Name != "" {
		heroes, err := s.repo.SearchByName(ctx, filter.Name)
		if err != nil {
			s.log.Error("failed to search heroes", "term", filter.Name, "error", err)
			return nil, fmt.Errorf("search heroes: %w", err)
		}
		return nonNil(heroes), nil
	}

	heroes, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list heroes", "error", err)
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	return nonNil(heroes), nil
}

func (s *Service) Find(ctx context.Context, id int) (*Hero, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	h, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.log.Error("failed to find hero", "hero_id", id, "error", err)
		return nil, fmt.Errorf("find hero: %w", err)
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, name string) (*Hero, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	h := &Hero{Name: name}
	if err := s.repo.Create(ctx, h); err != nil {
		s.log.Error("failed to create hero", "name", name, "error", err)
		return nil, fmt.Errorf("create hero: %w", err)
	}

	s.log.Info("hero created", "hero_id", h.ID, "name", h.Name)
	return h, nil
}

// Update обновляет имя существующего героя. Неизвестный ID - ErrNotFound
func (s *Service) Update(ctx context.Context, h Hero) (*Hero, error) {
	if h.ID <= 0 {
		return nil, ErrInvalidID
	}
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return nil, ErrInvalidName
	}

	if err := s.repo.Update(ctx, &h); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.log.Error("failed to update hero", "hero_id", h.ID, "error", err)
		return nil, fmt.Errorf("update hero: %w", err)
	}

	s.log.Info("hero updated", "hero_id", h.ID)
	return &h, nil
}

// Delete удаляет героя и возвращает удаленную запись
func (s *Service) Delete(ctx context.Context, id int) (*Hero, error) {
	h, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.log.Error("failed to delete hero", "hero_id", id, "error", err)
		return nil, fmt.Errorf("delete hero: %w", err)
	}

	s.log.Info("hero deleted", "hero_id", id)
	return h, nil
}

// Seed заполняет хранилище, только если оно пустое. Возвращает число добавленных записей
func (s *Service) Seed(ctx context.Context, heroes []Hero) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count heroes: %w", err)
	}
	if count > 0 {
		s.log.Debug("storage is not empty, skip seeding", "count", count)
		return 0, nil
	}

	for i := range heroes {
		h := heroes[i]
		if err := s.repo.Create(ctx, &h); err != nil {
			return i, fmt.Errorf("seed hero %q: %w", h.Name, err)
		}
	}

	s.log.Info("storage seeded", "count", len(heroes))
	return len(heroes), nil
}

func nonNil(heroes []Hero) []Hero {
	if heroes == nil {
		return []Hero{}
	}
	return heroes
}
