package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a concrete scheduled occurrence with UTC start/end timestamps.
// Created directly by admins or materialized from a RecurringShift.
type Shift struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shifts_occurrence" validate:"required"`
	CategoryID     uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shifts_occurrence" validate:"required"`
	Name           string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_shifts_occurrence" validate:"required,min=1,max=100"`
	StartTime      time.Time `json:"start_time" gorm:"not null;uniqueIndex:idx_shifts_occurrence" validate:"required"`
	EndTime        time.Time `json:"end_time" gorm:"not null;uniqueIndex:idx_shifts_occurrence" validate:"required"`
	Location       string    `json:"location" gorm:"size:200;uniqueIndex:idx_shifts_occurrence" validate:"max=200"`
	Slots          int       `json:"slots" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Organization Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Category     ShiftCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Signups      []ShiftSignup `json:"signups,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
