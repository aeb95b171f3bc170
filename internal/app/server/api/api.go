//GET    /api/v1/health       # Проверка доступности
//GET    /api/heroes          # Список героев (?id=, ?name=)
//GET    /api/heroes/{id}     # Получить героя
//POST   /api/heroes          # Создать героя
//PUT    /api/heroes          # Обновить героя
//DELETE /api/heroes/{id}     # Удалить героя

package api

import (
	healthAPI "heroes/internal/app/server/api/http/health"
	heroAPI "heroes/internal/app/server/api/http/hero"
	"heroes/internal/app/server/api/http/middleware"
	"heroes/internal/app/server/api/http/middleware/logger"
	"heroes/internal/app/server/api/http/middleware/requestid"
	"heroes/internal/domain/hero"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Hero   *heroAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(storage hero.Repository, kind string, log *slog.Logger) *chi.Mux {
	return NewWithService(hero.NewService(storage, log), storage, kind, log)
}

// NewWithService - то же, что New, с готовым сервисом (сид выполняется до старта)
func NewWithService(service hero.Servicer, storage healthAPI.Counter, kind string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	// /api/heroes/?id=1 и /api/heroes?id=1 - один маршрут
	mux.Use(chimw.StripSlashes)
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Heroes API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(service, storage, kind, log)
	h.Health.SetupRoutes(API)
	h.Hero.SetupRoutes(API)

	return mux
}

func handlers(service hero.Servicer, storage healthAPI.Counter, kind string, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage, kind, log, middlewares.GetAllAndClear())

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	heroHandler := heroAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Hero:   heroHandler,
	}
}
