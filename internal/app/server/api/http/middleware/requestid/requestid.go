package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

// Middleware берет X-Request-ID из запроса или генерирует новый, кладет в контекст и в ответ
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.SetHeader(Header, id)
		next(huma.WithValue(ctx, requestIDKey, id))
	}
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}
