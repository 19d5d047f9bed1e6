package repository

import (
	"context"

	"github.com/taskboard/backend/domain"
)

type ActivityFilter struct {
	UserID string
	Limit  int
	Offset int
}

// ActivityRepository is append-only: entries are never updated or removed.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// List returns one page of the actor's entries, newest first, plus the total.
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, int, error)
}
