// cmd/client/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"heroes/internal/app/client/config"
	"heroes/internal/app/client/message"
	"heroes/internal/app/client/service"
	"heroes/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	messages  *message.Service
	heroes    *service.HeroService
	debug     bool
	output    string
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Heroes - клиент коллекции героев",
	Long: `Heroes - клиент для просмотра и редактирования коллекции героев
на сервере Heroes API.

После каждой команды выводится журнал сообщений сервиса.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: flushMessages,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	if err := validateOutput(output); err != nil {
		return err
	}

	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.WithLevel(cfg.Env, level)

	messages = message.NewService()
	heroes = service.NewHeroService(cfg, messages, log)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		viper.AddConfigPath(config.ResolveConfigDir(os.Getenv("CONFIG_DIR")))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

// flushMessages печатает журнал сообщений и очищает его
func flushMessages(cmd *cobra.Command, _ []string) error {
	printMessages(cmd.OutOrStdout(), messages.Messages())
	messages.Clear()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", outputText, "формат вывода: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Heroes API")

	rootCmd.AddCommand(listCmd, getCmd, addCmd, updateCmd, deleteCmd, searchCmd, shellCmd)
}
