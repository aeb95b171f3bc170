package hero

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Hero), args.Error(1)
}

func (m *MockRepository) SearchByName(ctx context.Context, term string) ([]Hero, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Hero), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hero), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, h *Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, h *Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	all := []Hero{{ID: 12, Name: "Dr. Nice"}, {ID: 15, Name: "Magneta"}}

	tests := []struct {
		name   string
		filter Filter
		setup  func(m *MockRepository)
		want   []Hero
	}{
		{
			name:   "all heroes",
			filter: Filter{},
			setup: func(m *MockRepository) {
				m.On("List", mock.Anything).Return(all, nil)
			},
			want: all,
		},
		{
			name:   "by id found",
			filter: Filter{ID: 15, HasID: true},
			setup: func(m *MockRepository) {
				m.On("Get", mock.Anything, 15).Return(&Hero{ID: 15, Name: "Magneta"}, nil)
			},
			want: []Hero{{ID: 15, Name: "Magneta"}},
		},
		{
			name:   "by id not found gives empty array",
			filter: Filter{ID: 99, HasID: true},
			setup: func(m *MockRepository) {
				m.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)
			},
			want: []Hero{},
		},
		{
			name:   "explicit zero id gives empty array",
			filter: Filter{ID: 0, HasID: true},
			setup:  func(m *MockRepository) {},
			want:   []Hero{},
		},
		{
			name:   "negative id gives empty array",
			filter: Filter{ID: -3, HasID: true},
			setup:  func(m *MockRepository) {},
			want:   []Hero{},
		},
		{
			name:   "by name",
			filter: Filter{Name: "mag"},
			setup: func(m *MockRepository) {
				m.On("SearchByName", mock.Anything, "mag").Return(nil, nil)
			},
			want: []Hero{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setup(repo)

			got, err := newTestService(repo).List(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("database error"))

	_, err := newTestService(repo).List(context.Background(), Filter{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(h *Hero) bool {
		return h.Name == "Wonder" && h.ID == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Hero).ID = 42
	}).Return(nil)

	h, err := newTestService(repo).Create(context.Background(), "  Wonder ")

	require.NoError(t, err)
	assert.Equal(t, &Hero{ID: 42, Name: "Wonder"}, h)
	repo.AssertExpectations(t)
}

func TestService_Create_EmptyName(t *testing.T) {
	repo := new(MockRepository)

	_, err := newTestService(repo).Create(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalidName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Update", mock.Anything, &Hero{ID: 12, Name: "Dr. Nicer"}).Return(nil)

		h, err := newTestService(repo).Update(context.Background(), Hero{ID: 12, Name: "Dr. Nicer "})

		require.NoError(t, err)
		assert.Equal(t, "Dr. Nicer", h.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Update", mock.Anything, mock.Anything).Return(ErrNotFound)

		_, err := newTestService(repo).Update(context.Background(), Hero{ID: 77, Name: "Nobody"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := newTestService(new(MockRepository)).Update(context.Background(), Hero{Name: "x"})
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("returns deleted hero", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", mock.Anything, 13).Return(&Hero{ID: 13, Name: "Bombasto"}, nil)
		repo.On("Delete", mock.Anything, 13).Return(nil)

		h, err := newTestService(repo).Delete(context.Background(), 13)

		require.NoError(t, err)
		assert.Equal(t, "Bombasto", h.Name)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", mock.Anything, 13).Return(nil, ErrNotFound)

		_, err := newTestService(repo).Delete(context.Background(), 13)

		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestService_Seed(t *testing.T) {
	t.Run("empty storage", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		n, err := newTestService(repo).Seed(context.Background(), MockHeroes)

		require.NoError(t, err)
		assert.Equal(t, len(MockHeroes), n)
		repo.AssertNumberOfCalls(t, "Create", len(MockHeroes))
	})

	t.Run("non-empty storage", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", mock.Anything).Return(3, nil)

		n, err := newTestService(repo).Seed(context.Background(), MockHeroes)

		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHero_MatchesName(t *testing.T) {
	h := Hero{ID: 16, Name: "RubberMan"}
	assert.True(t, h.MatchesName("man"))
	assert.True(t, h.MatchesName("RUBBER"))
	assert.False(t, h.MatchesName("bat"))
}
