package repository

import (
	"time"

	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationRepository handles database operations for donations and their items
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create creates a new donation together with its items
func (r *DonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// GetByID retrieves a donation by ID with its items preloaded
func (r *DonationRepository) GetByID(id uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.Preload("Items").First(&donation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// GetByOrganizationID retrieves donations for an organization with pagination
func (r *DonationRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Donation, int64, error) {
	var donations []models.Donation
	var total int64

	if err := r.db.Model(&models.Donation{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Preload("Items").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&donations).Error
	return donations, total, err
}

// GetByOrganizationAndWindow retrieves donations created within [from, to)
// with their items preloaded
func (r *DonationRepository) GetByOrganizationAndWindow(organizationID uuid.UUID, from, to time.Time) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Where("organization_id = ? AND created_at >= ? AND created_at < ?", organizationID, from, to).
		Preload("Items").
		Order("created_at ASC").Find(&donations).Error
	return donations, err
}

// Update updates a donation
func (r *DonationRepository) Update(donation *models.Donation) error {
	return r.db.Save(donation).Error
}

// Delete deletes a donation (items cascade)
func (r *DonationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Donation{}, "id = ?", id).Error
}

// ReplaceItems deletes the donation's existing items and inserts the given set
func (r *DonationRepository) ReplaceItems(donationID uuid.UUID, items []models.DonationItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.DonationItem{}, "donation_id = ?", donationID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].DonationID = donationID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
