package service

import (
	"context"
	"testing"

	"github.com/InhotaEverton/Aromas-Caf/internal/config"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, cfg), repo
}

func seedUser(t *testing.T, svc AuthService, username, password, role string) dto.UserResponse {
	t.Helper()
	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: username,
		Name:     "Test User",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return *resp
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "maria", "correcthorse", model.RoleOperator)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria",
		Password: "correcthorse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, model.RoleOperator, resp.User.Role)

	claims, err := svc.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
	assert.False(t, claims.Refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "maria", "correcthorse", model.RoleOperator)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames produce the identical error
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedUser(t *testing.T) {
	svc, _ := newAuthFixture(t)
	user := seedUser(t, svc, "maria", "correcthorse", model.RoleOperator)

	require.NoError(t, svc.DeactivateUser(context.Background(), uuid.MustParse(user.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria",
		Password: "correcthorse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "maria", "correcthorse", model.RoleAdmin)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "maria",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not accepted as a refresh token
	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: "not.a.jwt",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "maria", "correcthorse", model.RoleOperator)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "maria",
		Name:     "Someone Else",
		Password: "password123",
		Role:     model.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateUserPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	user := seedUser(t, svc, "maria", "oldpassword", model.RoleOperator)

	_, err := svc.UpdateUser(context.Background(), uuid.MustParse(user.ID), dto.UpdateUserRequest{
		Password: "newpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "oldpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestListUsersFiltersInactive(t *testing.T) {
	svc, _ := newAuthFixture(t)
	active := seedUser(t, svc, "maria", "password123", model.RoleOperator)
	retired := seedUser(t, svc, "jose", "password123", model.RoleOperator)
	require.NoError(t, svc.DeactivateUser(context.Background(), uuid.MustParse(retired.ID)))

	visible, err := svc.ListUsers(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.Username, visible[0].Username)

	all, err := svc.ListUsers(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
