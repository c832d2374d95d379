package repositories

import (
	"context"

	"vendor-kyc.backend/internal/domain/entities"
)

// AdminRepository defines reviewer account data operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
