package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"heroes/internal/utils/logger"
)

const (
	envPath = ".env"

	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"

	defaultRunAddress      = ":8080"
	defaultStorage         = StorageMemory
	defaultSQLitePath      = "heroes.db"
	defaultMigrationsPath  = "migrations"
	defaultShutdownTimeout = 10
)

type Config struct {
	Env      string
	LogLevel string
	Storage  string
	Seed     bool
	DB       db
	Server   server
}

type db struct {
	DatabaseURI string
	SQLitePath  string
	Migrations  string
}

type server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
}

// MustLoad загружает конфигурацию сервера из окружения (и .env, если есть)
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", logger.EnvLocal)
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("STORAGE", defaultStorage)
	v.SetDefault("SQLITE_PATH", defaultSQLitePath)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("SEED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeout)

	cfg := &Config{
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Storage:  v.GetString("STORAGE"),
		Seed:     v.GetBool("SEED"),
		DB: db{
			DatabaseURI: v.GetString("DATABASE_URI"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
			Migrations:  v.GetString("MIGRATIONS_PATH"),
		},
		Server: server{
			RunAddress:      v.GetString("RUN_ADDRESS"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI обязателен для STORAGE=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("неизвестный STORAGE: %q", c.Storage)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("RUN_ADDRESS не может быть пустым")
	}
	return nil
}
