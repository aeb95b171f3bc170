package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/exp/slog"

	"heroes/internal/app/server/api"
	"heroes/internal/app/server/config"
	"heroes/internal/domain/hero"
	"heroes/internal/infrastructure/migration"
	"heroes/internal/infrastructure/storage/memory"
	"heroes/internal/infrastructure/storage/postgres"
	"heroes/internal/infrastructure/storage/sqlite"
	"heroes/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.WithLevel(cfg.Env, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closer, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	service := hero.NewService(repo, log)
	if cfg.Seed {
		n, err := service.Seed(ctx, hero.MockHeroes)
		if err != nil {
			return fmt.Errorf("seed heroes: %w", err)
		}
		log.Info("heroes seeded", "count", n)
	}

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.NewWithService(service, repo, cfg.Storage, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", cfg.Server.RunAddress, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage выбирает хранилище по STORAGE и накатывает миграции для SQL-бэкендов
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (hero.Repository, io.Closer, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		s, err := sqlite.New(cfg.DB.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		path := filepath.Join(cfg.DB.Migrations, config.StorageSQLite)
		if err := migration.NewMigration(path, sqlite.MigrationURL(cfg.DB.SQLitePath), nil).Up(); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		return s, s, nil

	case config.StoragePostgres:
		s, err := postgres.New(ctx, cfg.DB.DatabaseURI)
		if err != nil {
			return nil, nil, err
		}
		path := filepath.Join(cfg.DB.Migrations, config.StoragePostgres)
		if err := migration.NewMigration(path, cfg.DB.DatabaseURI, nil).Up(); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		return postgres.NewHeroRepository(s.Pool(), log), s, nil

	default:
		return memory.New(), nopCloser{}, nil
	}
}
