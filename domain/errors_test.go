package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDomainError(t *testing.T) {
	require.True(t, IsDomainError(ErrTaskNotFound, ErrCodeNotFound))
	require.False(t, IsDomainError(ErrTaskNotFound, ErrCodeConflict))
	require.False(t, IsDomainError(errors.New("plain"), ErrCodeNotFound))

	wrapped := fmt.Errorf("listing tasks: %w", ErrTaskNotFound)
	require.True(t, IsDomainError(wrapped, ErrCodeNotFound))
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapError(ErrCodeInternal, "query failed", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "query failed")
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"created", "updated", "deleted", "commented", "completed"} {
		action, err := ParseAction(raw)
		require.NoError(t, err)
		require.Equal(t, Action(raw), action)
	}

	_, err := ParseAction("archived")
	require.True(t, IsDomainError(err, ErrCodeInvalid))
}
