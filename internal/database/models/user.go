package models

import (
	"github.com/google/uuid"
)

// UserRole enumerates the roles a user can hold within an organization
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleVolunteer UserRole = "volunteer"
)

// IsValid checks whether the role is a known value
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleVolunteer:
		return true
	}
	return false
}

// User represents a volunteer or administrator belonging to an organization
type User struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_users_org_email" validate:"required"`
	FirstName      string    `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName       string    `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email          string    `json:"email" gorm:"size:200;not null;uniqueIndex:idx_users_org_email" validate:"required,email,max=200"`
	PasswordHash   string    `json:"-" gorm:"size:200;not null"`
	Phone          string    `json:"phone" gorm:"size:40" validate:"max=40"`
	Role           UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'volunteer'" validate:"required"`
	AvatarURL      string    `json:"avatar_url" gorm:"size:500"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Signups      []ShiftSignup `json:"signups,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
