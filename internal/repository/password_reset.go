package repository

import (
	"time"

	"foodbank-backend/internal/database/models"

	"gorm.io/gorm"
)

// PasswordResetRepository handles database operations for password reset codes
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create stores a new reset code
func (r *PasswordResetRepository) Create(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

// GetActiveByEmailAndCode retrieves the newest unused, unexpired code for an email
func (r *PasswordResetRepository) GetActiveByEmailAndCode(email, code string, now time.Time) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, now).
		Order("created_at DESC").First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkUsed flags a code as redeemed
func (r *PasswordResetRepository) MarkUsed(reset *models.PasswordReset) error {
	reset.Used = true
	return r.db.Save(reset).Error
}

// DeleteExpired removes codes past their expiry
func (r *PasswordResetRepository) DeleteExpired(now time.Time) error {
	return r.db.Delete(&models.PasswordReset{}, "expires_at <= ?", now).Error
}
