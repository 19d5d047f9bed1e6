package domain

import (
	"strings"
	"time"
)

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority validates a raw priority value against the enum.
func ParsePriority(raw string) (Priority, error) {
	switch Priority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(raw), nil
	default:
		return "", NewError(ErrCodeInvalid, "priority must be Low, Medium, or High")
	}
}

// Rank orders priorities for sorting. Higher means more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task represents a user-owned work item.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskSort is a validated sort expression for task listings.
// A leading '-' on the raw value requests descending order.
type TaskSort struct {
	Key  string
	Desc bool
}

// DefaultTaskSort lists newest tasks first.
var DefaultTaskSort = TaskSort{Key: "created_at", Desc: true}

// ParseTaskSort validates a raw sort parameter.
func ParseTaskSort(raw string) (TaskSort, error) {
	if raw == "" {
		return DefaultTaskSort, nil
	}
	sort := TaskSort{Key: raw}
	if strings.HasPrefix(raw, "-") {
		sort.Key = raw[1:]
		sort.Desc = true
	}
	switch sort.Key {
	case "created_at", "updated_at", "priority":
		return sort, nil
	default:
		return TaskSort{}, NewError(ErrCodeInvalid, "sort must be one of created_at, updated_at, priority")
	}
}
