package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/backend/domain"
)

// Entry is an activity record whose primary insert failed and which is
// waiting to be replayed.
type Entry struct {
	ID        string          `json:"id"`
	Activity  domain.Activity `json:"activity"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (e *Entry) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}
