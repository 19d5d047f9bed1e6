package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
	"github.com/taskboard/backend/usecase"
)

type UseCase struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		logger:     logger,
	}
}

// List returns one page of the caller's activity log, newest first, plus the
// total entry count. The log is append-only; there is no mutation API.
func (uc *UseCase) List(ctx context.Context, userID string, page, pageSize int) ([]domain.Activity, int, error) {
	page, size := usecase.NormalizePage(page, pageSize)
	return uc.activities.List(ctx, repository.ActivityFilter{
		UserID: userID,
		Limit:  size,
		Offset: (page - 1) * size,
	})
}
