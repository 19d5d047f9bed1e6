package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

// Config carries token issuance settings.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Credentials is the token pair handed out on login and refresh.
type Credentials struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *domain.User `json:"user"`
}

type UseCase struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
	cfg    Config
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens repository.RefreshTokenRepository, cfg Config, logger *zap.Logger) *UseCase {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

// Register creates a new user with a bcrypt-hashed credential.
func (uc *UseCase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "username is required")
	}
	if password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credential pair and issues tokens. Unknown usernames and
// wrong passwords map to the same error so account existence is not disclosed.
func (uc *UseCase) Login(ctx context.Context, username, password string) (*Credentials, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	return uc.issue(ctx, user)
}

// Refresh rotates a refresh token: the old token is revoked and a fresh pair issued.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*Credentials, error) {
	userID, err := uc.tokens.Lookup(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}

	if err := uc.tokens.Delete(ctx, refreshToken); err != nil {
		uc.logger.Warn("failed to revoke rotated refresh token", zap.Error(err))
	}

	return uc.issue(ctx, user)
}

// Logout revokes a refresh token. Revoking an unknown token is a no-op.
func (uc *UseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokens.Delete(ctx, refreshToken)
}

func (uc *UseCase) issue(ctx context.Context, user *domain.User) (*Credentials, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iss":     uc.cfg.JWTIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(uc.cfg.AccessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to sign access token", err)
	}

	refresh := uuid.NewString()
	if err := uc.tokens.Save(ctx, refresh, user.ID); err != nil {
		return nil, err
	}

	return &Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
