package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/backend/domain"
	authUC "github.com/taskboard/backend/usecase/auth"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type tokenRepoMock struct {
	mock.Mock
}

func (m *tokenRepoMock) Save(ctx context.Context, token, userID string) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *tokenRepoMock) Lookup(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *tokenRepoMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func testConfig() authUC.Config {
	return authUC.Config{
		JWTSecret:  "test-secret",
		JWTIssuer:  "taskboard-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_HashesPassword(t *testing.T) {
	users := new(userRepoMock)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")) == nil
	})).Return(nil).Once()

	uc := authUC.New(users, new(tokenRepoMock), testConfig(), nil)
	user, err := uc.Register(context.Background(), "alice", "alice@example.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "pw123", user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	users := new(userRepoMock)
	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken).Once()

	uc := authUC.New(users, new(tokenRepoMock), testConfig(), nil)
	_, err := uc.Register(context.Background(), "alice", "", "pw123")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestRegister_RequiresUsernameAndPassword(t *testing.T) {
	uc := authUC.New(new(userRepoMock), new(tokenRepoMock), testConfig(), nil)

	_, err := uc.Register(context.Background(), "  ", "", "pw123")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.Register(context.Background(), "alice", "", "")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestLogin_UnknownUserAndBadPasswordLookAlike(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()
	users.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: "u1", Username: "alice", PasswordHash: hashOf(t, "pw123")}, nil).Once()

	uc := authUC.New(users, new(tokenRepoMock), testConfig(), nil)

	_, ghostErr := uc.Login(context.Background(), "ghost", "whatever")
	_, badPwErr := uc.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, ghostErr, domain.ErrInvalidCredential)
	require.ErrorIs(t, badPwErr, domain.ErrInvalidCredential)
	require.Equal(t, ghostErr.Error(), badPwErr.Error())
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: "u1", Username: "alice", PasswordHash: hashOf(t, "pw123")}, nil).Once()

	tokens := new(tokenRepoMock)
	tokens.On("Save", mock.Anything, mock.Anything, "u1").Return(nil).Once()

	uc := authUC.New(users, tokens, testConfig(), nil)
	creds, err := uc.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, creds.RefreshToken)
	require.Equal(t, "alice", creds.User.Username)

	parsed, err := jwt.Parse(creds.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "u1", claims["user_id"])
	require.Equal(t, "taskboard-test", claims["iss"])

	tokens.AssertExpectations(t)
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Username: "alice"}, nil).Once()

	tokens := new(tokenRepoMock)
	tokens.On("Lookup", mock.Anything, "old-token").Return("u1", nil).Once()
	tokens.On("Delete", mock.Anything, "old-token").Return(nil).Once()
	tokens.On("Save", mock.Anything, mock.Anything, "u1").Return(nil).Once()

	uc := authUC.New(users, tokens, testConfig(), nil)
	creds, err := uc.Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	require.NotEqual(t, "old-token", creds.RefreshToken)
	tokens.AssertExpectations(t)
}

func TestRefresh_UnknownTokenUnauthorized(t *testing.T) {
	tokens := new(tokenRepoMock)
	tokens.On("Lookup", mock.Anything, "stale").Return("", domain.ErrInvalidCredential).Once()

	uc := authUC.New(new(userRepoMock), tokens, testConfig(), nil)
	_, err := uc.Refresh(context.Background(), "stale")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}
