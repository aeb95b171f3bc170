package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"heroes/internal/domain/hero"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("неизвестный формат вывода: %q", format)
	}
}

func printHeroes(w io.Writer, format string, heroes []hero.Hero) error {
	switch format {
	case outputJSON:
		return printJSON(w, heroes)
	case outputYAML:
		return printYAML(w, heroes)
	}

	if len(heroes) == 0 {
		_, err := fmt.Fprintln(w, "Героев нет")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, h := range heroes {
		fmt.Fprintf(tw, "%d\t%s\n", h.ID, h.Name)
	}
	return tw.Flush()
}

// printHero печатает одного героя; nil выводится как "не найден"
func printHero(w io.Writer, format string, h *hero.Hero) error {
	switch format {
	case outputJSON:
		return printJSON(w, h)
	case outputYAML:
		return printYAML(w, h)
	}

	if h == nil {
		_, err := fmt.Fprintln(w, "Герой не найден")
		return err
	}
	_, err := fmt.Fprintf(w, "%d: %s\n", h.ID, h.Name)
	return err
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

var (
	messageHeader = color.New(color.FgHiBlack, color.Bold)
	messageOK     = color.New(color.FgCyan)
	messageFailed = color.New(color.FgRed)
)

// printMessages выводит журнал сервиса; сообщения о сбоях выделяются красным
func printMessages(w io.Writer, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}

	messageHeader.Fprintln(w, "Messages")
	for _, m := range msgs {
		if strings.Contains(m, " failed: ") {
			messageFailed.Fprintln(w, m)
			continue
		}
		messageOK.Fprintln(w, m)
	}
}
