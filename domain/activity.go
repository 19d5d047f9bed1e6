package domain

import "time"

// Action is the closed set of recorded activity actions.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionCommented Action = "commented"
	ActionCompleted Action = "completed"
)

// ParseAction validates a raw action value against the enum.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionCreated, ActionUpdated, ActionDeleted, ActionCommented, ActionCompleted:
		return Action(raw), nil
	default:
		return "", NewError(ErrCodeInvalid, "unknown activity action")
	}
}

// Activity is an append-only log entry describing a task or comment mutation.
// TaskID survives as nil once the subject task has been deleted.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    *string   `json:"task_id,omitempty"`
	Action    Action    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
