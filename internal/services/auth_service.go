package services

import (
	"context"
	"log"
	"time"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/memcache"
	"clinicrm/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	ListUsers(ctx context.Context) ([]db_models.User, error)
}

type AuthService struct {
	userRepo    repositories.IUserRepository
	resetTokens memcache.ResetTokenStore
}

func NewAuthService(userRepo repositories.IUserRepository, resetTokens memcache.ResetTokenStore) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		resetTokens: resetTokens,
	}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil || !user.IsActive {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AuthService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	role := request.Role
	if role == "" {
		role = db_models.RoleConsultant
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return utils.TranslateDBError(err, false)
	}
	return nil
}

// ForgotPassword issues a single-use reset token. The response is the
// same whether or not the email exists, so the endpoint cannot be used
// to probe accounts.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, user.Email, 15*time.Minute)
	// TODO: deliver via SMTP once the mail provider account is set up
	log.Printf("Password reset token issued for %s", user.Email)

	return nil
}

func (a *AuthService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {

	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.userRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AuthService) ListUsers(ctx context.Context) ([]db_models.User, error) {

	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}
