package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultHeroesPath     = "/api/heroes"
	defaultConfigDir      = ".heroes"
	defaultRequestTimeout = 30
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	LogLevel       string        `mapstructure:"log_level"`
	HeroesPath     string        `mapstructure:"heroes_path"`
	ConfigDir      string        `mapstructure:"config_dir"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает окружение, .env и уже прочитанный viper-конфиг (см. cmd/client)
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("HEROES_PATH", defaultHeroesPath)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		HeroesPath:     viper.GetString("HEROES_PATH"),
		ConfigDir:      ResolveConfigDir(viper.GetString("CONFIG_DIR")),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ResolveConfigDir раскрывает относительный каталог конфигурации от домашней директории
func ResolveConfigDir(dir string) string {
	if dir == "" {
		dir = defaultConfigDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, dir)
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if !strings.HasPrefix(c.HeroesPath, "/") {
		return fmt.Errorf("heroes_path должен начинаться с '/': %q", c.HeroesPath)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть положительным")
	}
	return nil
}

// BaseURL возвращает адрес сервера со схемой
func (c *Config) BaseURL() string {
	address := strings.TrimRight(c.ServerAddress, "/")
	if strings.Contains(address, "://") {
		return address
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + address
}

// HeroesURL - адрес коллекции героев
func (c *Config) HeroesURL() string {
	return c.BaseURL() + c.HeroesPath
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
