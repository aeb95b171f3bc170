package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type counterFunc func(ctx context.Context) (int, error)

func (f counterFunc) Count(ctx context.Context) (int, error) { return f(ctx) }

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		count          counterFunc
		expectedStatus string
		expectedHeroes int
		wantErr        bool
	}{
		{
			name:           "health check returns OK",
			count:          func(context.Context) (int, error) { return 9, nil },
			expectedStatus: "OK",
			expectedHeroes: 9,
		},
		{
			name:    "storage failure",
			count:   func(context.Context) (int, error) { return 0, errors.New("connection refused") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(tt.count, "memory", slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, output)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, "memory", output.Body.Storage)
			assert.Equal(t, tt.expectedHeroes, output.Body.Heroes)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(counterFunc(func(context.Context) (int, error) { return 0, nil }), "sqlite", log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
	assert.Equal(t, "sqlite", handler.kind)
}
