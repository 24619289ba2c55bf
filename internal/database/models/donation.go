package models

import (
	"github.com/google/uuid"
)

// Donation is a weighed and valued contribution event. TotalWeight is the
// summary weight in kilograms; per-category breakdown lives in DonationItem.
type Donation struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	DonorID        *uuid.UUID `json:"donor_id,omitempty" gorm:"type:uuid;index"`
	ShiftID        *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid;index"`
	TotalWeight    float64    `json:"total_weight" gorm:"not null;default:0" validate:"min=0"`
	TotalValue     float64    `json:"total_value" gorm:"not null;default:0" validate:"min=0"`
	Notes          string     `json:"notes" gorm:"type:text"`
	PhotoURL       string     `json:"photo_url" gorm:"size:500"`

	// Relationships
	Organization Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Donor        *Donor         `json:"donor,omitempty" gorm:"foreignKey:DonorID"`
	Shift        *Shift         `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	Items        []DonationItem `json:"items,omitempty" gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Donation
func (Donation) TableName() string {
	return "donations"
}

// DonationItem is a category-tagged weight (kg) belonging to one Donation
type DonationItem struct {
	BaseModel
	DonationID uuid.UUID `json:"donation_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Weight     float64   `json:"weight" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Donation Donation         `json:"donation,omitempty" gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
	Category DonationCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DonationItem
func (DonationItem) TableName() string {
	return "donation_items"
}
