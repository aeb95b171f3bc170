package logger

import (
	"os"

	"golang.org/x/exp/slog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New создает логгер по окружению: local - цветной вывод, dev - JSON с debug, prod - JSON с info
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = setupPrettySlog()
	}

	return log
}

// WithLevel - то же, что New, но уровень задается явно (например, из LOG_LEVEL)
func WithLevel(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || level == "" {
		return New(env)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if env == EnvDev || env == EnvProd {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(NewPrettyHandler(os.Stderr, PrettyHandlerOptions{SlogOpts: opts}))
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(NewPrettyHandler(os.Stderr, opts))
}
