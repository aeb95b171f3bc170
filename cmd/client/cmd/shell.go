package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"heroes/internal/app/client/component"
	"heroes/internal/domain/hero"
)

const shellHelp = `Команды:
  list             показать список
  add <name>       создать героя
  delete <id>      удалить героя
  search <term>    поиск по части имени
  reload           перечитать список с сервера
  help             эта справка
  quit             выход`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Интерактивный список героев",
	Long: `Интерактивный режим: список героев загружается при старте,
добавление и удаление отражаются в списке сразу.

` + shellHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if err := heroes.HealthCheck(ctx); err != nil {
			fmt.Fprintf(out, "⚠️  Сервер недоступен: %v\n", err)
		}

		list := component.NewHeroes(heroes)
		list.Init(ctx)
		list.Wait()
		if err := printHeroes(out, output, list.Heroes()); err != nil {
			return err
		}
		flushMessages(cmd, nil)

		return runShell(cmd, list, cmd.InOrStdin())
	},
}

func runShell(cmd *cobra.Command, list *component.Heroes, in io.Reader) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "heroes> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		command, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch command {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, shellHelp)
			continue
		case "list":
		case "reload":
			list.Init(ctx)
		case "add":
			list.Add(ctx, arg)
		case "delete":
			id, err := parseID(strings.TrimSpace(arg))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			list.Delete(ctx, hero.Hero{ID: id})
		case "search":
			list.Wait()
			if err := printHeroes(out, output, heroes.SearchHeroes(ctx, arg)); err != nil {
				return err
			}
			flushMessages(cmd, nil)
			continue
		default:
			fmt.Fprintf(out, "неизвестная команда %q, см. help\n", command)
			continue
		}

		list.Wait()
		if err := printHeroes(out, output, list.Heroes()); err != nil {
			return err
		}
		flushMessages(cmd, nil)
	}
}
