package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
	"github.com/Arthur-Gab/graphql-task-api/internal/testutil"
)

func TestAuthService_PasswordHashing(t *testing.T) {
	h := testutil.NewHarness(t)

	hash, err := h.Auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.NotContains(t, hash, "s3cret-pass")

	assert.NoError(t, h.Auth.ComparePassword("s3cret-pass", hash))
	assert.Error(t, h.Auth.ComparePassword("wrong-pass", hash))
}

func TestAuthService_JWTRoundTrip(t *testing.T) {
	h := testutil.NewHarness(t)

	token, err := h.Auth.GenerateJWT("user-42")
	require.NoError(t, err)

	userID, ok := h.Auth.VerifyJWT(token)
	require.True(t, ok)
	assert.Equal(t, "user-42", userID)
}

func TestAuthService_VerifyJWTFailures(t *testing.T) {
	h := testutil.NewHarness(t)

	// Malformed, empty and forged tokens are indistinguishable.
	_, ok := h.Auth.VerifyJWT("")
	assert.False(t, ok)

	_, ok = h.Auth.VerifyJWT("not.a.token")
	assert.False(t, ok)

	forged := service.NewAuthService(nil, "other-secret", time.Hour)
	token, err := forged.GenerateJWT("user-42")
	require.NoError(t, err)
	_, ok = h.Auth.VerifyJWT(token)
	assert.False(t, ok)

	expired := service.NewAuthService(nil, testutil.JWTSecret, -time.Minute)
	token, err = expired.GenerateJWT("user-42")
	require.NoError(t, err)
	_, ok = h.Auth.VerifyJWT(token)
	assert.False(t, ok)
}

func TestAuthService_SignIn(t *testing.T) {
	h := testutil.NewHarness(t)
	h.CreateUser(t, "login@example.com", "s3cret-pass", "gopher")

	payload, err := h.Auth.SignIn("login@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	require.NotNil(t, payload.User)
	assert.Equal(t, "login@example.com", payload.User.Email)
	assert.Empty(t, payload.User.Password, "payload user must not carry the hash")

	userID, ok := h.Auth.VerifyJWT(payload.Token)
	require.True(t, ok)
	assert.Equal(t, payload.User.ID, userID)
}

func TestAuthService_SignInNormalizesEmail(t *testing.T) {
	h := testutil.NewHarness(t)
	h.CreateUser(t, "login@example.com", "s3cret-pass", "gopher")

	payload, err := h.Auth.SignIn("  Login@Example.COM ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", payload.User.Email)
}

func TestAuthService_SignInFailuresAreUniform(t *testing.T) {
	h := testutil.NewHarness(t)
	h.CreateUser(t, "login@example.com", "s3cret-pass", "gopher")

	// Wrong password and unknown email yield the exact same error, so a
	// caller cannot probe which emails are registered.
	_, errWrongPass := h.Auth.SignIn("login@example.com", "wrong-pass")
	_, errNoUser := h.Auth.SignIn("nobody@example.com", "s3cret-pass")

	assert.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, service.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestAuthService_SignInInvalidEmailFormat(t *testing.T) {
	h := testutil.NewHarness(t)

	_, err := h.Auth.SignIn("not-an-email", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}
