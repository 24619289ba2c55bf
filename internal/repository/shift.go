package repository

import (
	"time"

	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for concrete shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindOccurrence looks up a shift matching the exact occurrence fields used by
// recurrence materialization: (organization, category, name, start, end, location)
func (r *ShiftRepository) FindOccurrence(organizationID, categoryID uuid.UUID, name string, start, end time.Time, location string) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift,
		"organization_id = ? AND category_id = ? AND name = ? AND start_time = ? AND end_time = ? AND location = ?",
		organizationID, categoryID, name, start, end, location,
	).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByOrganizationID retrieves shifts for an organization with pagination
func (r *ShiftRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Order("start_time DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByOrganizationAndWindow retrieves shifts for an organization whose start
// time falls within [from, to)
func (r *ShiftRepository) GetByOrganizationAndWindow(organizationID uuid.UUID, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("organization_id = ? AND start_time >= ? AND start_time < ?", organizationID, from, to).
		Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

// WithTx returns a repository bound to the given transaction
func (r *ShiftRepository) WithTx(tx *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: tx}
}
