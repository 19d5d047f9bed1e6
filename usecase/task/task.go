package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
	"github.com/taskboard/backend/usecase"
)

// ListInput carries raw, not-yet-validated listing parameters.
type ListInput struct {
	Completed *bool
	Priority  string
	Search    string
	Sort      string
	Page      int
	PageSize  int
}

// CreateInput carries the caller-settable fields of a new task. The owner is
// always the authenticated user, never an input field.
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// Patch updates only the non-nil fields.
type Patch struct {
	Title       *string
	Description *string
	IsCompleted *bool
	Priority    *string
	DueDate     *time.Time
}

type UseCase struct {
	tasks    repository.TaskRepository
	recorder usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, recorder usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		recorder: recorder,
		logger:   logger,
	}
}

// List returns one page of the caller's tasks plus the total match count.
// Pages beyond the last yield an empty page, never an error.
func (uc *UseCase) List(ctx context.Context, userID string, input ListInput) ([]domain.Task, int, error) {
	filter := repository.TaskFilter{
		UserID:    userID,
		Completed: input.Completed,
		Search:    strings.TrimSpace(input.Search),
	}

	if input.Priority != "" {
		priority, err := domain.ParsePriority(input.Priority)
		if err != nil {
			return nil, 0, err
		}
		filter.Priority = priority
	}

	sort, err := domain.ParseTaskSort(input.Sort)
	if err != nil {
		return nil, 0, err
	}
	filter.Sort = sort

	page, size := usecase.NormalizePage(input.Page, input.PageSize)
	filter.Limit = size
	filter.Offset = (page - 1) * size

	return uc.tasks.List(ctx, filter)
}

// Get returns the task when it exists and belongs to the caller. Tasks owned
// by other users are reported as not found so their existence never leaks.
func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return uc.ownedTask(ctx, userID, id)
}

func (uc *UseCase) Create(ctx context.Context, userID string, input CreateInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		parsed, err := domain.ParsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, domain.Activity{
		UserID:  userID,
		TaskID:  &created.ID,
		Action:  domain.ActionCreated,
		Details: "Created task: " + created.Title,
	})

	return created, nil
}

func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.Task, error) {
	task, err := uc.ownedTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := task.IsCompleted

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.IsCompleted != nil {
		task.IsCompleted = *patch.IsCompleted
	}
	if patch.Priority != nil {
		priority, err := domain.ParsePriority(*patch.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	action := domain.ActionUpdated
	details := "Updated task: " + task.Title
	if !wasCompleted && task.IsCompleted {
		action = domain.ActionCompleted
		details = "Completed task: " + task.Title
	}
	uc.record(ctx, domain.Activity{
		UserID:  userID,
		TaskID:  &task.ID,
		Action:  action,
		Details: details,
	})

	return task, nil
}

// Delete records the deletion first, carrying the title in the details since
// the task row will be gone afterwards, then cascades comments and task in
// one transaction.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	task, err := uc.ownedTask(ctx, userID, id)
	if err != nil {
		return err
	}

	uc.record(ctx, domain.Activity{
		UserID:  userID,
		TaskID:  &task.ID,
		Action:  domain.ActionDeleted,
		Details: "Deleted task: " + task.Title,
	})

	return uc.tasks.Delete(ctx, id)
}

func (uc *UseCase) ownedTask(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// record never fails the triggering mutation.
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
