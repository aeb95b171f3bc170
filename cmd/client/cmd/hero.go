package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"heroes/internal/domain/hero"
)

var tolerant bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список героев",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printHeroes(cmd.OutOrStdout(), output, heroes.GetHeroes(cmd.Context()))
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Получить героя по id",
	Long: `Получить героя по id.

С флагом --tolerant отсутствующий герой не считается ошибкой запроса.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var h *hero.Hero
		if tolerant {
			h = heroes.GetHeroNo404(cmd.Context(), id)
		} else {
			h = heroes.GetHero(cmd.Context(), id)
		}
		return printHero(cmd.OutOrStdout(), output, h)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Создать героя",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("имя героя не может быть пустым")
		}
		return printHero(cmd.OutOrStdout(), output, heroes.AddHero(cmd.Context(), hero.Hero{Name: name}))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Переименовать героя",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(strings.Join(args[1:], " "))

		h := heroes.UpdateHero(cmd.Context(), hero.Hero{ID: id, Name: name})
		return printHero(cmd.OutOrStdout(), output, h)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить героя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return printHero(cmd.OutOrStdout(), output, heroes.DeleteHero(cmd.Context(), id))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Поиск героев по части имени",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		return printHeroes(cmd.OutOrStdout(), output, heroes.SearchHeroes(cmd.Context(), term))
	},
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный id: %q", s)
	}
	return id, nil
}

func init() {
	getCmd.Flags().BoolVar(&tolerant, "tolerant", false, "не считать отсутствие героя ошибкой")
}
