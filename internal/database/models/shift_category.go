package models

import (
	"github.com/google/uuid"
)

// ShiftCategory is a named grouping for shifts, scoped to an organization
type ShiftCategory struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shift_categories_org_name" validate:"required"`
	Name           string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_shift_categories_org_name" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"type:text"`

	// Relationships
	Organization    Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Shifts          []Shift          `json:"shifts,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	RecurringShifts []RecurringShift `json:"recurring_shifts,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftCategory
func (ShiftCategory) TableName() string {
	return "shift_categories"
}
