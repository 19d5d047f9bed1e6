package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/internal/infrastructure/journal"
	"github.com/taskboard/backend/repository"
	"github.com/taskboard/backend/usecase"
)

// Recorder writes activity entries to the primary store and falls back to the
// durable journal when the insert fails. It sits outside the transactional
// boundary of the mutations that trigger it.
type Recorder struct {
	activities repository.ActivityRepository
	journal    *journal.Store
	logger     *zap.Logger
}

func NewRecorder(activities repository.ActivityRepository, jrnl *journal.Store, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		activities: activities,
		journal:    jrnl,
		logger:     logger,
	}
}

// Record attempts the primary insert and journals the entry on failure. An
// error is returned only when both the insert and the journal write failed,
// meaning the entry is lost.
func (r *Recorder) Record(ctx context.Context, activity domain.Activity) error {
	if activity.UserID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "activity requires an actor")
	}

	err := r.activities.Insert(ctx, &activity)
	if err == nil {
		return nil
	}

	if r.journal == nil {
		return err
	}

	r.logger.Warn("activity insert failed, journaling entry",
		zap.String("action", string(activity.Action)),
		zap.Error(err))

	if jErr := r.journal.Append(journal.Entry{Activity: activity}); jErr != nil {
		r.logger.Error("failed to journal activity entry", zap.Error(jErr))
		return jErr
	}
	return nil
}

var _ usecase.ActivityRecorder = (*Recorder)(nil)
