package models

import (
	"github.com/google/uuid"
)

// Donor is a tenant-scoped lookup entity for donation sources
type Donor struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_donors_org_name" validate:"required"`
	Name           string    `json:"name" gorm:"size:150;not null;uniqueIndex:idx_donors_org_name" validate:"required,min=1,max=150"`
	Email          string    `json:"email" gorm:"size:200" validate:"omitempty,email,max=200"`
	Phone          string    `json:"phone" gorm:"size:40" validate:"max=40"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Donations    []Donation   `json:"donations,omitempty" gorm:"foreignKey:DonorID"`
}

// TableName returns the table name for Donor
func (Donor) TableName() string {
	return "donors"
}
