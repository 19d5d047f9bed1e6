package repository

import "context"

// RefreshTokenRepository stores opaque refresh tokens keyed to a user id.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token, userID string) error
	// Lookup resolves a token to its user id, or domain.ErrInvalidCredential.
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
