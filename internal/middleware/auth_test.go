package middleware

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(authorization string, preset string) (*fasthttp.RequestCtx, bool) {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/tasks")
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	if preset != "" {
		ctx.Request.Header.Set("X-User-ID", preset)
	}

	called := false
	handler := JWTAuth(testSecret, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})
	handler(&ctx)
	return &ctx, called
}

func TestJWTAuth_ValidTokenInjectsUserID(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})

	ctx, called := runMiddleware("Bearer "+token, "")
	require.True(t, called)
	require.Equal(t, "u1", string(ctx.Request.Header.Peek("X-User-ID")))
}

func TestJWTAuth_MissingTokenRejected(t *testing.T) {
	ctx, called := runMiddleware("", "")
	require.False(t, called)
	require.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestJWTAuth_RejectionCarriesErrorEnvelope(t *testing.T) {
	ctx, called := runMiddleware("", "")
	require.False(t, called)
	require.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	require.Equal(t, "error", envelope["status"])
	require.Equal(t, "UNAUTHORIZED", envelope["code"])
	require.NotEmpty(t, envelope["error"])
}

func TestJWTAuth_WrongSecretRejected(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})

	_, called := runMiddleware("Bearer "+token, "")
	require.False(t, called)
}

func TestJWTAuth_ExpiredTokenRejected(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	_, called := runMiddleware("Bearer "+token, "")
	require.False(t, called)
}

func TestJWTAuth_DiscardsClientSuppliedIdentity(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})

	ctx, called := runMiddleware("Bearer "+token, "spoofed")
	require.True(t, called)
	require.Equal(t, "u1", string(ctx.Request.Header.Peek("X-User-ID")))
}

func TestJWTAuth_TokenWithoutUserIDRejected(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, called := runMiddleware("Bearer "+token, "")
	require.False(t, called)
}
