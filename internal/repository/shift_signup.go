package repository

import (
	"time"

	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSignupRepository handles database operations for shift signups
type ShiftSignupRepository struct {
	db *gorm.DB
}

// NewShiftSignupRepository creates a new shift signup repository
func NewShiftSignupRepository(db *gorm.DB) *ShiftSignupRepository {
	return &ShiftSignupRepository{db: db}
}

// Create creates a new shift signup
func (r *ShiftSignupRepository) Create(signup *models.ShiftSignup) error {
	return r.db.Create(signup).Error
}

// GetByID retrieves a signup by ID
func (r *ShiftSignupRepository) GetByID(id uuid.UUID) (*models.ShiftSignup, error) {
	var signup models.ShiftSignup
	err := r.db.First(&signup, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

// GetByUserAndShift retrieves the signup for a (user, shift) pair
func (r *ShiftSignupRepository) GetByUserAndShift(userID, shiftID uuid.UUID) (*models.ShiftSignup, error) {
	var signup models.ShiftSignup
	err := r.db.First(&signup, "user_id = ? AND shift_id = ?", userID, shiftID).Error
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

// GetByShiftID retrieves all signups for a shift
func (r *ShiftSignupRepository) GetByShiftID(shiftID uuid.UUID) ([]models.ShiftSignup, error) {
	var signups []models.ShiftSignup
	err := r.db.Where("shift_id = ?", shiftID).Find(&signups).Error
	return signups, err
}

// CountByShiftID counts signups for a shift
func (r *ShiftSignupRepository) CountByShiftID(shiftID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShiftSignup{}).Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}

// GetByUserID retrieves all signups for a user with pagination
func (r *ShiftSignupRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.ShiftSignup, int64, error) {
	var signups []models.ShiftSignup
	var total int64

	if err := r.db.Model(&models.ShiftSignup{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).Limit(limit).Offset(offset).Find(&signups).Error
	return signups, total, err
}

// GetByOrganizationAndWindow retrieves signups (with their shifts preloaded)
// whose shift starts within [from, to) for an organization
func (r *ShiftSignupRepository) GetByOrganizationAndWindow(organizationID uuid.UUID, from, to time.Time) ([]models.ShiftSignup, error) {
	var signups []models.ShiftSignup
	err := r.db.Joins("JOIN shifts ON shifts.id = shift_signups.shift_id").
		Where("shifts.deleted_at IS NULL").
		Where("shifts.organization_id = ? AND shifts.start_time >= ? AND shifts.start_time < ?", organizationID, from, to).
		Preload("Shift").
		Find(&signups).Error
	return signups, err
}

// Update updates a signup
func (r *ShiftSignupRepository) Update(signup *models.ShiftSignup) error {
	return r.db.Save(signup).Error
}

// Delete deletes a signup
func (r *ShiftSignupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftSignup{}, "id = ?", id).Error
}

// DeleteByShiftID deletes all signups for a shift
func (r *ShiftSignupRepository) DeleteByShiftID(shiftID uuid.UUID) error {
	return r.db.Delete(&models.ShiftSignup{}, "shift_id = ?", shiftID).Error
}

// WithTx returns a repository bound to the given transaction
func (r *ShiftSignupRepository) WithTx(tx *gorm.DB) *ShiftSignupRepository {
	return &ShiftSignupRepository{db: tx}
}
