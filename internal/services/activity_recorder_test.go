package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/internal/infrastructure/journal"
	"github.com/taskboard/backend/repository"
)

type activityRepoMock struct {
	mock.Mock
}

func (m *activityRepoMock) Insert(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *activityRepoMock) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, int, error) {
	args := m.Called(ctx, filter)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Int(1), args.Error(2)
}

func openTestJournal(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"), "journal")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestRecord_InsertsDirectly(t *testing.T) {
	repo := new(activityRepoMock)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	store := openTestJournal(t)
	recorder := NewRecorder(repo, store, nil)

	err := recorder.Record(context.Background(), domain.Activity{UserID: "alice", Action: domain.ActionCreated})
	require.NoError(t, err)

	size, err := store.Size()
	require.NoError(t, err)
	require.Zero(t, size)
}

func TestRecord_JournalsOnInsertFailure(t *testing.T) {
	repo := new(activityRepoMock)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	store := openTestJournal(t)
	recorder := NewRecorder(repo, store, nil)

	err := recorder.Record(context.Background(), domain.Activity{UserID: "alice", Action: domain.ActionDeleted})
	require.NoError(t, err)

	size, err := store.Size()
	require.NoError(t, err)
	require.Equal(t, 1, size)
}

func TestRecord_RequiresActor(t *testing.T) {
	recorder := NewRecorder(new(activityRepoMock), nil, nil)
	err := recorder.Record(context.Background(), domain.Activity{Action: domain.ActionCreated})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
