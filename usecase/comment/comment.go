package comment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
	"github.com/taskboard/backend/usecase"
)

type UseCase struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
	recorder usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(comments repository.CommentRepository, tasks repository.TaskRepository, recorder usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		comments: comments,
		tasks:    tasks,
		recorder: recorder,
		logger:   logger,
	}
}

// ListForTask returns a task's comments, newest first. Listing is scoped to
// the task owner; other callers get not-found, matching task access rules.
func (uc *UseCase) ListForTask(ctx context.Context, userID, taskID string) ([]domain.Comment, error) {
	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return uc.comments.ListByTask(ctx, taskID)
}

// Create attaches a comment to an existing task. Any authenticated user may
// comment, including on tasks they do not own. The author is always the
// caller.
func (uc *UseCase) Create(ctx context.Context, userID, taskID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "content is required")
	}

	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:  task.ID,
		UserID:  userID,
		Content: content,
	}

	created, err := uc.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, domain.Activity{
		UserID:  userID,
		TaskID:  &task.ID,
		Action:  domain.ActionCommented,
		Details: "Added comment on task: " + task.Title,
	})

	return created, nil
}

// Get returns a comment visible to the caller: its author or the owner of
// its parent task.
func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Comment, error) {
	return uc.visibleComment(ctx, userID, id)
}

// Update edits a comment's content. Only the author may edit.
func (uc *UseCase) Update(ctx context.Context, userID, id, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "content is required")
	}

	comment, err := uc.visibleComment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, domain.ErrCommentNotFound
	}

	comment.Content = content
	if err := uc.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. The author or the parent task's owner may delete.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	comment, err := uc.visibleComment(ctx, userID, id)
	if err != nil {
		return err
	}

	uc.record(ctx, domain.Activity{
		UserID:  userID,
		TaskID:  &comment.TaskID,
		Action:  domain.ActionDeleted,
		Details: "Deleted comment: " + comment.ID,
	})

	return uc.comments.Delete(ctx, id)
}

// visibleComment resolves a comment id for the caller: the comment's author
// and the parent task's owner see it, everyone else gets not-found.
func (uc *UseCase) visibleComment(ctx context.Context, userID, id string) (*domain.Comment, error) {
	comment, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID == userID {
		return comment, nil
	}

	task, err := uc.tasks.GetByID(ctx, comment.TaskID)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}
	if task.UserID != userID {
		return nil, domain.ErrCommentNotFound
	}
	return comment, nil
}

func (uc *UseCase) record(ctx context.Context, activity domain.Activity) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.Record(ctx, activity); err != nil {
		uc.logger.Error("failed to record activity",
			zap.String("action", string(activity.Action)),
			zap.Error(err))
	}
}
