package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/pkg/memcache"
)

func newAuthService() (AuthServiceInterface, *fakeUserRepo, *memcache.ResetTokens) {
	userRepo := newFakeUserRepo()
	tokens := memcache.NewResetTokens()
	return NewAuthService(userRepo, tokens), userRepo, tokens
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	req := request_models.SignUpRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@clinic.com",
		Password: "secret123",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), req))
	assert.ErrorContains(t, svc.CreateAccount(context.Background(), req), "already registered")
}

func TestCreateAccount_DefaultRole(t *testing.T) {
	svc, userRepo, _ := newAuthService()

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@clinic.com",
		Password: "secret123",
	}))

	user, err := userRepo.FindByEmail(context.Background(), "mehmet@clinic.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, db_models.RoleConsultant, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be hashed")
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthService()

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@clinic.com",
		Password: "secret123",
	}))

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "mehmet@clinic.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "mehmet@clinic.com",
		Password: "wrong-password",
	})
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@clinic.com",
		Password: "secret123",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestResetPasswordFlow(t *testing.T) {
	svc, _, tokens := newAuthService()

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@clinic.com",
		Password: "secret123",
	}))

	// forgot-password for an unknown email must not error
	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@clinic.com"))

	tokens.Set("reset-tok", "mehmet@clinic.com", time.Minute)
	require.NoError(t, svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       "reset-tok",
		NewPassword: "brandnew99",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "mehmet@clinic.com",
		Password: "brandnew99",
	})
	require.NoError(t, err)

	// consumed tokens are rejected
	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       "reset-tok",
		NewPassword: "another000",
	})
	assert.ErrorContains(t, err, "reset token")
}
