package repository

import (
	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonorRepository handles database operations for donors
type DonorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) *DonorRepository {
	return &DonorRepository{db: db}
}

// Create creates a new donor
func (r *DonorRepository) Create(donor *models.Donor) error {
	return r.db.Create(donor).Error
}

// GetByID retrieves a donor by ID
func (r *DonorRepository) GetByID(id uuid.UUID) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.First(&donor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByOrganizationAndName retrieves a donor by name within an organization
func (r *DonorRepository) GetByOrganizationAndName(organizationID uuid.UUID, name string) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.First(&donor, "organization_id = ? AND name = ?", organizationID, name).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByOrganizationID retrieves donors for an organization with pagination
func (r *DonorRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Donor, int64, error) {
	var donors []models.Donor
	var total int64

	if err := r.db.Model(&models.Donor{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Order("name ASC").Limit(limit).Offset(offset).Find(&donors).Error
	return donors, total, err
}

// Update updates a donor
func (r *DonorRepository) Update(donor *models.Donor) error {
	return r.db.Save(donor).Error
}

// Delete deletes a donor
func (r *DonorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Donor{}, "id = ?", id).Error
}
