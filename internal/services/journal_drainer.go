package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskboard/backend/internal/infrastructure/journal"
	"github.com/taskboard/backend/repository"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// DrainerConfig controls how frequently the journal is replayed and how long
// undelivered entries are retained.
type DrainerConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
	Retention  time.Duration
}

// JournalDrainer replays journaled activity entries into the primary store
// once connectivity returns.
type JournalDrainer struct {
	store      *journal.Store
	monitor    ConnectionHealth
	activities repository.ActivityRepository
	logger     *zap.Logger
	cron       *cron.Cron
	cfg        DrainerConfig
}

func NewJournalDrainer(
	store *journal.Store,
	monitor ConnectionHealth,
	activities repository.ActivityRepository,
	logger *zap.Logger,
	cfg DrainerConfig,
) *JournalDrainer {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &JournalDrainer{
		store:      store,
		monitor:    monitor,
		activities: activities,
		logger:     logger,
		cfg:        cfg,
		cron:       cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = d.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := d.Drain(ctx); err != nil {
			d.logger.Error("journal drain failed", zap.Error(err))
		}
	})

	if cfg.Retention > 0 {
		_, _ = d.cron.AddFunc("@every 1h", func() {
			if err := d.Prune(); err != nil {
				d.logger.Error("journal retention pass failed", zap.Error(err))
			}
		})
	}

	return d
}

// Prune drops journal entries older than the retention window. Entries that
// old have exhausted their replay chances anyway.
func (d *JournalDrainer) Prune() error {
	if d == nil || d.store == nil || d.cfg.Retention <= 0 {
		return nil
	}
	return d.store.Cleanup(time.Now().Add(-d.cfg.Retention))
}

// Start launches the cron scheduler.
func (d *JournalDrainer) Start() {
	if d == nil || d.cron == nil {
		return
	}
	d.cron.Start()
	d.logger.Info("journal drainer started")
}

// Stop gracefully stops the scheduler.
func (d *JournalDrainer) Stop(ctx context.Context) {
	if d == nil || d.cron == nil {
		return
	}
	stopCtx := d.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	d.logger.Info("journal drainer stopped")
}

// Drain replays journaled entries synchronously. Entries that keep failing
// are dropped after the retry budget; losing an activity entry never blocks
// the journal.
func (d *JournalDrainer) Drain(ctx context.Context) error {
	if d == nil || d.store == nil {
		return nil
	}
	if d.monitor != nil && !d.monitor.IsOnline() {
		d.logger.Debug("skipping journal drain (offline)")
		return nil
	}

	entries, err := d.store.GetBatch(d.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		activity := entry.Activity
		if err := d.activities.Insert(ctx, &activity); err != nil {
			d.logger.Error("failed to replay journal entry",
				zap.String("entry_id", entry.ID),
				zap.String("action", string(activity.Action)),
				zap.Error(err))

			entry.Retries++
			if entry.Retries >= d.cfg.MaxRetries {
				d.logger.Warn("dropping journal entry (max retries reached)", zap.String("entry_id", entry.ID))
				_ = d.store.Remove(entry)
				continue
			}

			if err := d.store.Remove(entry); err != nil {
				d.logger.Warn("failed to remove journal entry", zap.Error(err))
			}
			if err := d.store.Requeue(entry); err != nil {
				d.logger.Error("failed to requeue journal entry", zap.Error(err))
			}
			continue
		}

		if err := d.store.Remove(entry); err != nil {
			d.logger.Warn("failed to purge replayed journal entry", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of journaled entries.
func (d *JournalDrainer) Size() int {
	if d == nil || d.store == nil {
		return 0
	}
	size, err := d.store.Size()
	if err != nil {
		return 0
	}
	return size
}
