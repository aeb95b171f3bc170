// Package service реализует доступ к коллекции героев по HTTP.
//
// Ни один метод HeroService не возвращает ошибку: при сбое пишется
// диагностика в лог, сообщение в журнал и возвращается значение по умолчанию.
package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"heroes/internal/app/client/config"
	"heroes/internal/domain/hero"
)

const messagePrefix = "HeroService: "

// Messenger - журнал, в который сервис пишет сообщения для пользователя
type Messenger interface {
	Add(message string)
}

type HeroService struct {
	http     *httpClient
	messages Messenger
	log      *slog.Logger
}

func NewHeroService(cfg *config.Config, messages Messenger, log *slog.Logger) *HeroService {
	log = log.With("component", "HeroService")
	return &HeroService{
		http:     newHTTPClient(cfg, log),
		messages: messages,
		log:      log,
	}
}

// GetHeroes запрашивает всех героев
func (s *HeroService) GetHeroes(ctx context.Context) []hero.Hero {
	fail := handleError(s, "getHeroes", []hero.Hero{})

	var heroes []hero.Hero
	if err := s.fetch(ctx, http.MethodGet, s.http.heroesURL("", nil), nil, &heroes); err != nil {
		return fail(err)
	}

	s.addMessage("fetched heroes")
	return nonNil(heroes)
}

// GetHeroNo404 ищет героя через ?id=; отсутствие героя не считается ошибкой
func (s *HeroService) GetHeroNo404(ctx context.Context, id int) *hero.Hero {
	fail := handleError[*hero.Hero](s, fmt.Sprintf("getHero id = %d", id), nil)

	query := url.Values{"id": {strconv.Itoa(id)}}
	var heroes []hero.Hero
	if err := s.fetch(ctx, http.MethodGet, s.http.heroesURL("/", query), nil, &heroes); err != nil {
		return fail(err)
	}

	if len(heroes) == 0 {
		s.addMessage(fmt.Sprintf("did not find hero id = %d", id))
		return nil
	}
	s.addMessage(fmt.Sprintf("fetched hero id = %d", id))
	return &heroes[0]
}

// GetHero запрашивает героя по id; 404 обрабатывается как сбой
func (s *HeroService) GetHero(ctx context.Context, id int) *hero.Hero {
	fail := handleError[*hero.Hero](s, fmt.Sprintf("getHero id = %d", id), nil)

	var h *hero.Hero
	if err := s.fetch(ctx, http.MethodGet, s.http.heroesURL("/"+strconv.Itoa(id), nil), nil, &h); err != nil {
		return fail(err)
	}

	s.addMessage(fmt.Sprintf("fetched hero id = %d", id))
	return h
}

// AddHero создает героя; id назначает сервер
func (s *HeroService) AddHero(ctx context.Context, h hero.Hero) *hero.Hero {
	fail := handleError[*hero.Hero](s, "addHero", nil)

	var created *hero.Hero
	if err := s.fetch(ctx, http.MethodPost, s.http.heroesURL("", nil), h, &created); err != nil {
		return fail(err)
	}
	if created == nil {
		return fail(fmt.Errorf("%w: пустой ответ", ErrRequestFailed))
	}

	s.addMessage(fmt.Sprintf("added hero with id = %d", created.ID))
	return created
}

func (s *HeroService) UpdateHero(ctx context.Context, h hero.Hero) *hero.Hero {
	fail := handleError[*hero.Hero](s, "updateHero", nil)

	var updated *hero.Hero
	if err := s.fetch(ctx, http.MethodPut, s.http.heroesURL("", nil), h, &updated); err != nil {
		return fail(err)
	}

	s.addMessage(fmt.Sprintf("updated hero id = %d", h.ID))
	return updated
}

func (s *HeroService) DeleteHero(ctx context.Context, id int) *hero.Hero {
	fail := handleError[*hero.Hero](s, "deleteHero", nil)

	var deleted *hero.Hero
	if err := s.fetch(ctx, http.MethodDelete, s.http.heroesURL("/"+strconv.Itoa(id), nil), nil, &deleted); err != nil {
		return fail(err)
	}

	s.addMessage(fmt.Sprintf("deleted hero id = %d", id))
	return deleted
}

// SearchHeroes ищет героев по подстроке имени; пустой запрос не отправляется
func (s *HeroService) SearchHeroes(ctx context.Context, term string) []hero.Hero {
	if strings.TrimSpace(term) == "" {
		return []hero.Hero{}
	}
	fail := handleError(s, "searchHeroes", []hero.Hero{})

	query := url.Values{"name": {term}}
	var heroes []hero.Hero
	if err := s.fetch(ctx, http.MethodGet, s.http.heroesURL("/", query), nil, &heroes); err != nil {
		return fail(err)
	}

	if len(heroes) == 0 {
		s.addMessage(fmt.Sprintf("no heroes matching %q", term))
	} else {
		s.addMessage(fmt.Sprintf("found heroes matching %q", term))
	}
	return nonNil(heroes)
}

// HealthCheck проверяет доступность сервера, в журнал не пишет
func (s *HeroService) HealthCheck(ctx context.Context) error {
	return s.http.healthCheck(ctx)
}

func (s *HeroService) fetch(ctx context.Context, method, rawURL string, body, result any) error {
	resp, err := s.http.doRequest(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	return s.http.parseResponse(resp, result)
}

func (s *HeroService) addMessage(message string) {
	s.messages.Add(messagePrefix + message)
}

// handleError возвращает обработчик сбоя операции op со значением по умолчанию fallback
func handleError[T any](s *HeroService, op string, fallback T) func(error) T {
	return func(err error) T {
		s.log.Error("request failed", "operation", op, "error", err)
		s.addMessage(fmt.Sprintf("%s failed: %s", op, err.Error()))
		return fallback
	}
}

func nonNil(heroes []hero.Hero) []hero.Hero {
	if heroes == nil {
		return []hero.Hero{}
	}
	return heroes
}
