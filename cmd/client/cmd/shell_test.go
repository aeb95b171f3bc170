package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"heroes/internal/app/client/component"
	"heroes/internal/app/client/config"
	"heroes/internal/app/client/message"
	"heroes/internal/app/client/service"
	"heroes/internal/app/server/api"
	"heroes/internal/domain/hero"
	"heroes/internal/infrastructure/storage/memory"
)

func setupShell(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := memory.New()
	_, err := hero.NewService(storage, quiet).Seed(context.Background(), hero.MockHeroes)
	require.NoError(t, err)

	srv := httptest.NewServer(api.New(storage, "memory", quiet))
	t.Cleanup(srv.Close)

	output = outputText
	messages = message.NewService()
	heroes = service.NewHeroService(&config.Config{
		ServerAddress:  srv.URL,
		HeroesPath:     "/api/heroes",
		RequestTimeout: time.Second,
	}, messages, quiet)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunShell(t *testing.T) {
	cmd, out := setupShell(t)

	list := component.NewHeroes(heroes)
	list.Init(cmd.Context())
	list.Wait()
	require.Len(t, list.Heroes(), len(hero.MockHeroes))

	input := strings.Join([]string{
		"add Wonder",
		"delete 12",
		"search mag",
		"bogus",
		"quit",
		"add Ignored",
	}, "\n")

	require.NoError(t, runShell(cmd, list, strings.NewReader(input)))

	names := make([]string, 0, len(list.Heroes()))
	for _, h := range list.Heroes() {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "Wonder")
	assert.NotContains(t, names, "Dr. Nice")
	assert.NotContains(t, names, "Ignored")

	text := out.String()
	assert.Contains(t, text, "HeroService: added hero with id = 21")
	assert.Contains(t, text, "HeroService: deleted hero id = 12")
	assert.Contains(t, text, `HeroService: found heroes matching "mag"`)
	assert.Contains(t, text, `неизвестная команда "bogus"`)
	assert.Zero(t, messages.Len())
}

func TestGetHeroNo404_NonPositiveID(t *testing.T) {
	setupShell(t)

	for _, id := range []int{0, -3} {
		messages.Clear()

		h := heroes.GetHeroNo404(context.Background(), id)

		assert.Nil(t, h)
		assert.Equal(t, []string{fmt.Sprintf("HeroService: did not find hero id = %d", id)}, messages.Messages())
	}
}
