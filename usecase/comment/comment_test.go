package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
	commentUC "github.com/taskboard/backend/usecase/comment"
)

type commentRepoMock struct {
	mock.Mock
}

func (m *commentRepoMock) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	args := m.Called(ctx, id)

	var comment *domain.Comment
	if value := args.Get(0); value != nil {
		comment = value.(*domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *commentRepoMock) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepoMock) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, comment)

	var created *domain.Comment
	if value := args.Get(0); value != nil {
		created = value.(*domain.Comment)
	}
	return created, args.Error(1)
}

func (m *commentRepoMock) Update(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *commentRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, int, error) {
	args := m.Called(ctx, filter)
	return nil, args.Int(1), args.Error(2)
}

func (m *taskRepoMock) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, task)
	return task, args.Error(1)
}

func (m *taskRepoMock) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recorderMock struct {
	mock.Mock
}

func (m *recorderMock) Record(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func TestListForTask_ScopedToTaskOwner(t *testing.T) {
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "bob"}, nil).Once()

	comments := new(commentRepoMock)
	uc := commentUC.New(comments, tasks, nil, nil)

	_, err := uc.ListForTask(context.Background(), "alice", "t1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	comments.AssertNotCalled(t, "ListByTask")
}

func TestListForTask_ReturnsOwnersComments(t *testing.T) {
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "alice"}, nil).Once()

	comments := new(commentRepoMock)
	comments.On("ListByTask", mock.Anything, "t1").
		Return([]domain.Comment{{ID: "c1", TaskID: "t1", UserID: "bob", Content: "nice"}}, nil).Once()

	uc := commentUC.New(comments, tasks, nil, nil)
	list, err := uc.ListForTask(context.Background(), "alice", "t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	comments.AssertExpectations(t)
}

func TestCreate_AnyAuthenticatedUserMayComment(t *testing.T) {
	// bob comments on alice's task: allowed.
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").
		Return(&domain.Task{ID: "t1", UserID: "alice", Title: "Buy milk"}, nil).Once()

	comments := new(commentRepoMock)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.TaskID == "t1" && c.UserID == "bob" && c.Content == "done?"
	})).Return(&domain.Comment{ID: "c1", TaskID: "t1", UserID: "bob", Content: "done?"}, nil).Once()

	recorder := new(recorderMock)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(a domain.Activity) bool {
		return a.UserID == "bob" && a.Action == domain.ActionCommented && a.TaskID != nil && *a.TaskID == "t1"
	})).Return(nil).Once()

	uc := commentUC.New(comments, tasks, recorder, nil)
	created, err := uc.Create(context.Background(), "bob", "t1", "done?")
	require.NoError(t, err)
	require.Equal(t, "bob", created.UserID)
	recorder.AssertExpectations(t)
}

func TestCreate_RequiresExistingTask(t *testing.T) {
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrTaskNotFound).Once()

	comments := new(commentRepoMock)
	uc := commentUC.New(comments, tasks, nil, nil)

	_, err := uc.Create(context.Background(), "bob", "missing", "hello")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	comments.AssertNotCalled(t, "Create")
}

func TestCreate_RequiresContent(t *testing.T) {
	uc := commentUC.New(new(commentRepoMock), new(taskRepoMock), nil, nil)

	_, err := uc.Create(context.Background(), "bob", "t1", "   ")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestGet_HiddenFromStrangers(t *testing.T) {
	comments := new(commentRepoMock)
	comments.On("GetByID", mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", TaskID: "t1", UserID: "bob"}, nil).Once()

	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "alice"}, nil).Once()

	uc := commentUC.New(comments, tasks, nil, nil)
	_, err := uc.Get(context.Background(), "carol", "c1")
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestUpdate_AuthorOnly(t *testing.T) {
	comments := new(commentRepoMock)
	comments.On("GetByID", mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", TaskID: "t1", UserID: "bob", Content: "old"}, nil).Once()

	// alice owns the task, so she can see the comment, but cannot edit it.
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "alice"}, nil).Once()

	uc := commentUC.New(comments, tasks, nil, nil)
	_, err := uc.Update(context.Background(), "alice", "c1", "new")
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
	comments.AssertNotCalled(t, "Update")
}

func TestDelete_TaskOwnerMayModerate(t *testing.T) {
	comments := new(commentRepoMock)
	comments.On("GetByID", mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", TaskID: "t1", UserID: "bob"}, nil).Once()
	comments.On("Delete", mock.Anything, "c1").Return(nil).Once()

	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "alice"}, nil).Once()

	recorder := new(recorderMock)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(a domain.Activity) bool {
		return a.Action == domain.ActionDeleted && a.Details == "Deleted comment: c1"
	})).Return(nil).Once()

	uc := commentUC.New(comments, tasks, recorder, nil)
	require.NoError(t, uc.Delete(context.Background(), "alice", "c1"))
	comments.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestDelete_StrangerGetsNotFound(t *testing.T) {
	comments := new(commentRepoMock)
	comments.On("GetByID", mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", TaskID: "t1", UserID: "bob"}, nil).Once()

	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, "t1").Return(&domain.Task{ID: "t1", UserID: "alice"}, nil).Once()

	uc := commentUC.New(comments, tasks, nil, nil)
	err := uc.Delete(context.Background(), "carol", "c1")
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
	comments.AssertNotCalled(t, "Delete")
}
