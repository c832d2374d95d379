package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/domain/repositories"
	"vendor-kyc.backend/pkg/crypto"
	"vendor-kyc.backend/pkg/jwt"
	"vendor-kyc.backend/pkg/logger"
)

// AuthUsecase handles admin authentication
type AuthUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*jwt.TokenPair, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid username or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		return nil, domainerrors.Unauthorized("Invalid username or password")
	}

	return u.jwtService.GenerateTokenPair(admin.Username, entities.AdminRole)
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("Invalid or expired refresh token")
	}

	// Account may have been removed since the token was issued
	admin, err := u.adminRepo.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid or expired refresh token")
		}
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(admin.Username, entities.AdminRole)
}

// GetMe returns the authenticated admin's account
func (u *AuthUsecase) GetMe(ctx context.Context, username string) (*entities.Admin, error) {
	return u.adminRepo.GetByUsername(ctx, username)
}

// ChangePassword rotates an admin's password after verifying the current one
func (u *AuthUsecase) ChangePassword(ctx context.Context, username string, input *entities.ChangePasswordInput) error {
	admin, err := u.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.OldPassword, admin.PasswordHash) {
		return domainerrors.Unauthorized("Current password is incorrect")
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.adminRepo.UpdatePassword(ctx, username, hash)
}

// EnsureAdmin creates the reviewer account named in configuration if it does
// not already exist. Credentials come from explicit configuration, never from
// compiled-in defaults.
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := u.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	createErr := u.adminRepo.Create(ctx, &entities.Admin{
		Username:     username,
		PasswordHash: hash,
	})
	if createErr != nil {
		// Another instance may have seeded the account concurrently
		if errors.Is(createErr, domainerrors.ErrAlreadyExists) {
			return nil
		}
		return createErr
	}

	logger.WithContext(ctx).Info("seeded admin account", zap.String("username", username))
	return nil
}
