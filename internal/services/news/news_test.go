package news

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/colddogs/storefront/internal/models"
)

type RepositoryMock struct{ mock.Mock }

func (m *RepositoryMock) CountNews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepositoryMock) CreateNews(ctx context.Context, item models.News) (*models.News, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}
func (m *RepositoryMock) ListNews(ctx context.Context) ([]models.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.News), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Seed_EmptyStore(t *testing.T) {
	repo := new(RepositoryMock)
	svc := New(repo, newNoopLogger())

	repo.On("CountNews", mock.Anything).Return(int64(0), nil).Once()
	for _, item := range defaultNews {
		repo.On("CreateNews", mock.Anything, item).
			Return(&models.News{Title: item.Title}, nil).Once()
	}

	err := svc.Seed(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Seed_NonEmptyStoreIsUntouched(t *testing.T) {
	repo := new(RepositoryMock)
	svc := New(repo, newNoopLogger())

	repo.On("CountNews", mock.Anything).Return(int64(5), nil).Once()

	err := svc.Seed(context.Background())
	require.NoError(t, err)
	repo.AssertNotCalled(t, "CreateNews", mock.Anything, mock.Anything)
}

func TestService_Seed_CountError(t *testing.T) {
	repo := new(RepositoryMock)
	svc := New(repo, newNoopLogger())

	repo.On("CountNews", mock.Anything).
		Return(int64(0), errors.New("connection refused")).Once()

	err := svc.Seed(context.Background())
	assert.Error(t, err)
}

func TestService_List(t *testing.T) {
	repo := new(RepositoryMock)
	svc := New(repo, newNoopLogger())

	repo.On("ListNews", mock.Anything).Return([]models.News{
		{ID: 2, Title: "C+ теперь поддерживает все карты"},
		{ID: 1, Title: "Fish Bot 2.0 уже здесь"},
	}, nil).Once()

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.EqualValues(t, 2, items[0].ID)
}
