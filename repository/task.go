package repository

import (
	"context"

	"github.com/taskboard/backend/domain"
)

// TaskFilter narrows and orders task listings. Completed is a tri-state:
// nil means "any".
type TaskFilter struct {
	UserID    string
	Completed *bool
	Priority  domain.Priority
	Search    string
	Sort      domain.TaskSort
	Limit     int
	Offset    int
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns one page of matching tasks plus the total match count.
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, int, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	// Delete removes the task and its comments in a single transaction.
	Delete(ctx context.Context, id string) error
}
