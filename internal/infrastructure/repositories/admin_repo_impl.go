package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/infrastructure/models"
)

// AdminRepository implements reviewer account data operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	m := &models.Admin{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	admin.CreatedAt = m.CreatedAt
	admin.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUsername gets an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Admin{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// UpdatePassword replaces the stored password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Admin{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
