package repository

import (
	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringShiftRepository handles database operations for recurring shift templates
type RecurringShiftRepository struct {
	db *gorm.DB
}

// NewRecurringShiftRepository creates a new recurring shift repository
func NewRecurringShiftRepository(db *gorm.DB) *RecurringShiftRepository {
	return &RecurringShiftRepository{db: db}
}

// Create creates a new recurring shift
func (r *RecurringShiftRepository) Create(shift *models.RecurringShift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a recurring shift by ID
func (r *RecurringShiftRepository) GetByID(id uuid.UUID) (*models.RecurringShift, error) {
	var shift models.RecurringShift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByOrganizationAndID retrieves a recurring shift scoped to an organization
func (r *RecurringShiftRepository) GetByOrganizationAndID(organizationID, id uuid.UUID) (*models.RecurringShift, error) {
	var shift models.RecurringShift
	err := r.db.First(&shift, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByOrganizationID retrieves recurring shifts for an organization with pagination
func (r *RecurringShiftRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.RecurringShift, int64, error) {
	var shifts []models.RecurringShift
	var total int64

	if err := r.db.Model(&models.RecurringShift{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Order("day_of_week ASC, start_time ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// Update updates a recurring shift
func (r *RecurringShiftRepository) Update(shift *models.RecurringShift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a recurring shift
func (r *RecurringShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RecurringShift{}, "id = ?", id).Error
}
