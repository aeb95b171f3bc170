// Package component содержит контроллер списка героев.
package component

import (
	"context"
	"strings"
	"sync"

	"heroes/internal/domain/hero"
)

// HeroAPI - часть HeroService, нужная списку
type HeroAPI interface {
	GetHeroes(ctx context.Context) []hero.Hero
	AddHero(ctx context.Context, h hero.Hero) *hero.Hero
	DeleteHero(ctx context.Context, id int) *hero.Hero
}

// Heroes - состояние списка; запросы выполняются асинхронно
type Heroes struct {
	api    HeroAPI
	heroes []hero.Hero
	mu     sync.RWMutex
	wg     sync.WaitGroup
}

func NewHeroes(api HeroAPI) *Heroes {
	return &Heroes{
		api:    api,
		heroes: []hero.Hero{},
	}
}

// Init запрашивает полный список и заменяет им состояние по завершении
func (c *Heroes) Init(ctx context.Context) {
	c.goAsync(func() {
		heroes := c.api.GetHeroes(ctx)

		c.mu.Lock()
		c.heroes = append([]hero.Hero{}, heroes...)
		c.mu.Unlock()
	})
}

// Add создает героя с именем name и добавляет результат в конец списка
func (c *Heroes) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	c.goAsync(func() {
		created := c.api.AddHero(ctx, hero.Hero{Name: name})
		if created == nil {
			return
		}

		c.mu.Lock()
		c.heroes = append(c.heroes, *created)
		c.mu.Unlock()
	})
}

// Delete убирает героя из списка сразу, запрос на удаление уходит в фоне
func (c *Heroes) Delete(ctx context.Context, h hero.Hero) {
	c.mu.Lock()
	kept := c.heroes[:0:0]
	for _, existing := range c.heroes {
		if existing.ID != h.ID {
			kept = append(kept, existing)
		}
	}
	c.heroes = kept
	c.mu.Unlock()

	c.goAsync(func() {
		_ = c.api.DeleteHero(ctx, h.ID)
	})
}

// Heroes возвращает копию текущего списка
func (c *Heroes) Heroes() []hero.Hero {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]hero.Hero, len(c.heroes))
	copy(out, c.heroes)
	return out
}

// Wait блокируется до завершения всех запущенных запросов
func (c *Heroes) Wait() {
	c.wg.Wait()
}

func (c *Heroes) goAsync(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}
