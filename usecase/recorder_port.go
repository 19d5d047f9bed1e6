package usecase

import (
	"context"

	"github.com/taskboard/backend/domain"
)

// ActivityRecorder abstracts the activity side channel so use cases stay
// storage-agnostic. Implementations are best-effort: a returned error means
// the entry was lost, never that the triggering mutation must fail.
type ActivityRecorder interface {
	Record(ctx context.Context, activity domain.Activity) error
}
