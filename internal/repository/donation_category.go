package repository

import (
	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationCategoryRepository handles database operations for donation categories
type DonationCategoryRepository struct {
	db *gorm.DB
}

// NewDonationCategoryRepository creates a new donation category repository
func NewDonationCategoryRepository(db *gorm.DB) *DonationCategoryRepository {
	return &DonationCategoryRepository{db: db}
}

// Create creates a new donation category
func (r *DonationCategoryRepository) Create(category *models.DonationCategory) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a donation category by ID
func (r *DonationCategoryRepository) GetByID(id uuid.UUID) (*models.DonationCategory, error) {
	var category models.DonationCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByOrganizationAndName retrieves a category by name within an organization
func (r *DonationCategoryRepository) GetByOrganizationAndName(organizationID uuid.UUID, name string) (*models.DonationCategory, error) {
	var category models.DonationCategory
	err := r.db.First(&category, "organization_id = ? AND name = ?", organizationID, name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByOrganizationID retrieves all donation categories for an organization
func (r *DonationCategoryRepository) GetByOrganizationID(organizationID uuid.UUID) ([]models.DonationCategory, error) {
	var categories []models.DonationCategory
	err := r.db.Where("organization_id = ?", organizationID).Order("name ASC").Find(&categories).Error
	return categories, err
}

// Update updates a donation category
func (r *DonationCategoryRepository) Update(category *models.DonationCategory) error {
	return r.db.Save(category).Error
}

// Delete deletes a donation category
func (r *DonationCategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DonationCategory{}, "id = ?", id).Error
}
