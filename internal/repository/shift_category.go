package repository

import (
	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftCategoryRepository handles database operations for shift categories
type ShiftCategoryRepository struct {
	db *gorm.DB
}

// NewShiftCategoryRepository creates a new shift category repository
func NewShiftCategoryRepository(db *gorm.DB) *ShiftCategoryRepository {
	return &ShiftCategoryRepository{db: db}
}

// Create creates a new shift category
func (r *ShiftCategoryRepository) Create(category *models.ShiftCategory) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a shift category by ID
func (r *ShiftCategoryRepository) GetByID(id uuid.UUID) (*models.ShiftCategory, error) {
	var category models.ShiftCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByOrganizationAndName retrieves a category by name within an organization
func (r *ShiftCategoryRepository) GetByOrganizationAndName(organizationID uuid.UUID, name string) (*models.ShiftCategory, error) {
	var category models.ShiftCategory
	err := r.db.First(&category, "organization_id = ? AND name = ?", organizationID, name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByOrganizationID retrieves all shift categories for an organization
func (r *ShiftCategoryRepository) GetByOrganizationID(organizationID uuid.UUID) ([]models.ShiftCategory, error) {
	var categories []models.ShiftCategory
	err := r.db.Where("organization_id = ?", organizationID).Order("name ASC").Find(&categories).Error
	return categories, err
}

// Update updates a shift category
func (r *ShiftCategoryRepository) Update(category *models.ShiftCategory) error {
	return r.db.Save(category).Error
}

// Delete deletes a shift category
func (r *ShiftCategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftCategory{}, "id = ?", id).Error
}
