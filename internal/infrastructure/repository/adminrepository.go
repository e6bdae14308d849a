package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
)

// AdminRepository resolves the staff accounts that receive ticket
// notifications.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// AdminEmails returns the email addresses of all admin users.
func (r *AdminRepository) AdminEmails(ctx context.Context) ([]string, error) {
	var emails []string
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("is_admin = ?", true).
		Pluck("email", &emails).Error; err != nil {
		return nil, fmt.Errorf("failed to load admin emails: %w", err)
	}

	return emails, nil
}
