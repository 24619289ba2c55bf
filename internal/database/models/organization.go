package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Address     string `json:"address" gorm:"size:200" validate:"max=200"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Users              []User             `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ShiftCategories    []ShiftCategory    `json:"shift_categories,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	RecurringShifts    []RecurringShift   `json:"recurring_shifts,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Shifts             []Shift            `json:"shifts,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Donors             []Donor            `json:"donors,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	DonationCategories []DonationCategory `json:"donation_categories,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Donations          []Donation         `json:"donations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
