package hero

import (
	"heroes/internal/domain/hero"
)

type listInput struct {
	ID   string `query:"id" example:"12" doc:"Вернуть только героя с этим ID (0 или 1 запись)"`
	Name string `query:"name" example:"man" doc:"Подстрока имени, без учета регистра"`
}

type listOutput struct {
	Body []hero.Hero
}

type findInput struct {
	ID int `path:"id" example:"12" doc:"ID героя"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ID   int    `json:"id,omitempty" doc:"Игнорируется, ID назначает сервер"`
	Name string `json:"name" minLength:"1" example:"Wonder" doc:"Имя героя"`
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	ID   int    `json:"id" minimum:"1" example:"12" doc:"ID героя"`
	Name string `json:"name" minLength:"1" example:"Dr. Nice" doc:"Новое имя героя"`
}

type output struct {
	Body hero.Hero
}
