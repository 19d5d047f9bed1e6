package redis

import (
	"context"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

type refreshTokenRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewRefreshTokenRepository creates a Redis-backed refresh token store.
// Tokens expire automatically after the configured TTL.
func NewRefreshTokenRepository(client *redislib.Client, ttl time.Duration) repository.RefreshTokenRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &refreshTokenRepository{
		client: client,
		prefix: "refresh:",
		ttl:    ttl,
	}
}

func (r *refreshTokenRepository) Save(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return domain.ErrInvalidPayload
	}
	return r.client.Set(ctx, r.prefix+token, userID, r.ttl).Err()
}

func (r *refreshTokenRepository) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, r.prefix+token).Result()
	if err != nil {
		if err == redislib.Nil {
			return "", domain.ErrInvalidCredential
		}
		return "", err
	}
	return userID, nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.prefix+token).Err()
}
