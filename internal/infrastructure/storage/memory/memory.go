package memory

import (
	"context"
	"sort"
	"sync"

	"heroes/internal/domain/hero"
)

// firstID - ID первого героя в пустом хранилище
const firstID = 11

// Storage - in-memory хранилище героев, безопасно для конкурентного доступа
type Storage struct {
	mu     sync.RWMutex
	heroes map[int]hero.Hero
}

func New() *Storage {
	return &Storage{
		heroes: make(map[int]hero.Hero),
	}
}

func (s *Storage) List(_ context.Context) ([]hero.Hero, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(hero.Hero) bool { return true }), nil
}

func (s *Storage) SearchByName(_ context.Context, term string) ([]hero.Hero, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(h hero.Hero) bool { return h.MatchesName(term) }), nil
}

func (s *Storage) Get(_ context.Context, id int) (*hero.Hero, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.heroes[id]
	if !ok {
		return nil, hero.ErrNotFound
	}
	return &h, nil
}

func (s *Storage) Create(_ context.Context, h *hero.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.ID == 0 {
		h.ID = s.genID()
	}
	s.heroes[h.ID] = *h
	return nil
}

func (s *Storage) Update(_ context.Context, h *hero.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.heroes[h.ID]; !ok {
		return hero.ErrNotFound
	}
	s.heroes[h.ID] = *h
	return nil
}

func (s *Storage) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.heroes[id]; !ok {
		return hero.ErrNotFound
	}
	delete(s.heroes, id)
	return nil
}

func (s *Storage) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.heroes), nil
}

// genID возвращает max(id)+1, либо firstID для пустого хранилища
func (s *Storage) genID() int {
	if len(s.heroes) == 0 {
		return firstID
	}
	maxID := 0
	for id := range s.heroes {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (s *Storage) sorted(keep func(hero.Hero) bool) []hero.Hero {
	result := make([]hero.Hero, 0, len(s.heroes))
	for _, h := range s.heroes {
		if keep(h) {
			result = append(result, h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
