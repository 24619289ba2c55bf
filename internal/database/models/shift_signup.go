package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftSignup links a user to a concrete shift. At most one signup exists
// per (user, shift) pair.
type ShiftSignup struct {
	BaseModel
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_signups_user_shift" validate:"required"`
	ShiftID     uuid.UUID  `json:"shift_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_signups_user_shift" validate:"required"`
	CheckIn     *time.Time `json:"check_in,omitempty"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	MealsServed int        `json:"meals_served" gorm:"default:0" validate:"min=0"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shift Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftSignup
func (ShiftSignup) TableName() string {
	return "shift_signups"
}
