package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
)

func TestSignInWithFixtureCredentials(t *testing.T) {
	svc := NewAuthService(newTestRepos(t), newTestConfig())

	session, err := svc.SignIn(context.Background(), "owner@restaurant.com", "owner123")
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "owner", session.User.Role)
	assert.Equal(t, "Olivia Marchetti", session.User.Name)
}

func TestSignInWrongPassword(t *testing.T) {
	svc := NewAuthService(newTestRepos(t), newTestConfig())

	_, err := svc.SignIn(context.Background(), "owner@restaurant.com", "nope")
	var authErr *apierror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid credentials", authErr.Msg)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc := NewAuthService(newTestRepos(t), newTestConfig())

	_, err := svc.SignIn(context.Background(), "nobody@restaurant.com", "owner123")
	var authErr *apierror.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestSignInIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := NewAuthService(newTestRepos(t), newTestConfig())

	_, err := svc.SignIn(context.Background(), "Owner@Restaurant.com", "owner123")
	assert.NoError(t, err)
}

func TestSignUpThenSignIn(t *testing.T) {
	svc := NewAuthService(newTestRepos(t), newTestConfig())

	created, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email:    "new-manager@restaurant.com",
		Password: "longenough",
		Name:     "Nadia Petrov",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", created.User.Role)

	session, err := svc.SignIn(context.Background(), "new-manager@restaurant.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, session.User.ID)
}

func TestMeReturnsProfile(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos, newTestConfig())

	session, err := svc.SignIn(context.Background(), "host@restaurant.com", "host123")
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "host", me.Role)
	assert.Equal(t, session.User.Email, me.Email)
}
