package models

import (
	"github.com/google/uuid"
)

// RecurringShift is a weekly shift template. DayOfWeek follows time.Weekday
// numbering (0 = Sunday). StartTime and EndTime are times of day in "HH:MM"
// 24-hour format; concrete timestamps are derived at materialization.
type RecurringShift struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID     uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	DayOfWeek      int       `json:"day_of_week" gorm:"not null" validate:"min=0,max=6"`
	StartTime      string    `json:"start_time" gorm:"size:5;not null" validate:"required,len=5"`
	EndTime        string    `json:"end_time" gorm:"size:5;not null" validate:"required,len=5"`
	Location       string    `json:"location" gorm:"size:200" validate:"max=200"`
	Slots          int       `json:"slots" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Organization Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Category     ShiftCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RecurringShift
func (RecurringShift) TableName() string {
	return "recurring_shifts"
}
