package hero

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/api/heroes"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "heroes-list",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Список героев",
		Description: "Без параметров - все герои. ?id= - массив из 0 или 1 героя, ?name= - поиск по подстроке.",
		Tags:        []string{"heroes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "heroes-find",
		Method:      http.MethodGet,
		Path:        basePath + "/{id}",
		Summary:     "Получить героя",
		Tags:        []string{"heroes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "heroes-create",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Создать героя",
		Tags:          []string{"heroes"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "heroes-update",
		Method:      http.MethodPut,
		Path:        basePath,
		Summary:     "Обновить героя",
		Tags:        []string{"heroes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "heroes-delete",
		Method:      http.MethodDelete,
		Path:        basePath + "/{id}",
		Summary:     "Удалить героя",
		Tags:        []string{"heroes"},
		Middlewares: h.middleware,
	}
}
