package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation of ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return domain.ErrInvalidPayload
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO activities (id, user_id, task_id, action, details)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`

	var taskID interface{}
	if activity.TaskID != nil {
		taskID = *activity.TaskID
	}

	return r.pool.QueryRow(ctx, query,
		activity.ID,
		activity.UserID,
		taskID,
		string(activity.Action),
		nullString(activity.Details),
	).Scan(&activity.CreatedAt)
}

func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE user_id = $1`, filter.UserID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT id, user_id, task_id, action, COALESCE(details, ''), created_at
	FROM activities
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var (
			activity domain.Activity
			action   string
		)
		if err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.TaskID,
			&action,
			&activity.Details,
			&activity.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		activity.Action = domain.Action(action)
		activities = append(activities, activity)
	}
	return activities, total, rows.Err()
}
