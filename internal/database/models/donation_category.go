package models

import (
	"github.com/google/uuid"
)

// DonationCategory is a tenant-scoped lookup entity for classifying donation items
type DonationCategory struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_donation_categories_org_name" validate:"required"`
	Name           string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_donation_categories_org_name" validate:"required,min=1,max=100"`

	// Relationships
	Organization Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Items        []DonationItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for DonationCategory
func (DonationCategory) TableName() string {
	return "donation_categories"
}
