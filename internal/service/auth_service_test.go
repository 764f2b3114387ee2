package service

import (
	"context"
	"testing"
	"time"

	"vibestudio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Correct-Horse-42!"

func newTestAuth(repo *userRepoStub) *AuthService {
	return NewAuthService(repo, AuthConfig{
		Secret:   "test-secret-that-is-long-enough-123",
		Issuer:   "vibestudio-api",
		Audience: "vibestudio-client",
		TTL:      time.Hour,
	})
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuth(repo)
	ctx := context.Background()

	session, err := svc.Signup(ctx, SignupInput{Username: "ann_1", Email: "Ann@Example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ann_1", session.User.Name)
	assert.Equal(t, "ann@example.com", session.User.Email)
	assert.NotEqual(t, testPassword, session.User.Password)

	userID, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)

	login, err := svc.Login(ctx, "ann@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newTestAuth(newUserRepoStub())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Username: "ann", Email: "ann@example.com"})
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Signup(ctx, SignupInput{Username: "ann", Email: "not-an-email", Password: testPassword})
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Signup(ctx, SignupInput{Username: "ann", Email: "ann@example.com", Password: "short"})
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc := newTestAuth(newUserRepoStub())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Username: "ann", Email: "ann@example.com", Password: testPassword})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, SignupInput{Username: "ann2", Email: "ann@example.com", Password: testPassword})
	assertAppErrorCode(t, err, models.CodeConflict)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newTestAuth(newUserRepoStub())
	ctx := context.Background()
	_, err := svc.Signup(ctx, SignupInput{Username: "ann", Email: "ann@example.com", Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ann@example.com", "Wrong-Password-1!")
	assertAppErrorCode(t, err, models.CodeUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", testPassword)
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuth(repo)

	token, err := svc.IssueToken(7, "ann")
	require.NoError(t, err)

	other := NewAuthService(repo, AuthConfig{Secret: "test-secret-that-is-long-enough-123", Issuer: "vibestudio-api", Audience: "someone-else"})
	_, err = other.ParseToken(token)
	assertAppErrorCode(t, err, models.CodeUnauthorized)

	wrongKey := NewAuthService(repo, AuthConfig{Secret: "a-completely-different-secret-0000", Issuer: "vibestudio-api", Audience: "vibestudio-client"})
	_, err = wrongKey.ParseToken(token)
	assertAppErrorCode(t, err, models.CodeUnauthorized)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ParseToken(token)
	assertAppErrorCode(t, err, models.CodeUnauthorized)

	_, err = svc.ParseToken("garbage")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}
