package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"heroes/internal/domain/hero"
	"heroes/internal/infrastructure/migration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const migrationsPath = "../../../../migrations/sqlite"

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heroes.db")
	require.NoError(t, migration.NewMigration(migrationsPath, MigrationURL(path), nil).Up())

	s, err := New(path, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	seeded := &hero.Hero{ID: 12, Name: "Dr. Nice"}
	require.NoError(t, s.Create(ctx, seeded))
	assert.Equal(t, 12, seeded.ID)

	created := &hero.Hero{Name: "Wonder"}
	require.NoError(t, s.Create(ctx, created))
	assert.Equal(t, 13, created.ID)

	got, err := s.Get(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "Wonder", got.Name)

	require.NoError(t, s.Update(ctx, &hero.Hero{ID: 13, Name: "Wonder Woman"}))
	got, err = s.Get(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "Wonder Woman", got.Name)

	assert.ErrorIs(t, s.Update(ctx, &hero.Hero{ID: 99, Name: "x"}), hero.ErrNotFound)

	found, err := s.SearchByName(ctx, "WOMAN")
	require.NoError(t, err)
	assert.Equal(t, []hero.Hero{{ID: 13, Name: "Wonder Woman"}}, found)

	require.NoError(t, s.Delete(ctx, 12))
	_, err = s.Get(ctx, 12)
	assert.ErrorIs(t, err, hero.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 12), hero.ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStorage_SearchIgnoresWildcards(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	require.NoError(t, s.Create(ctx, &hero.Hero{Name: "Magma"}))

	found, err := s.SearchByName(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStorage_SearchFoldsUnicode(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	require.NoError(t, s.Create(ctx, &hero.Hero{Name: "Ärger"}))
	require.NoError(t, s.Create(ctx, &hero.Hero{Name: "Magma"}))

	found, err := s.SearchByName(ctx, "ä")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ärger", found[0].Name)

	found, err = s.SearchByName(ctx, "ÄRG")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
