package models

import (
	"time"
)

// PasswordReset is a time-boxed one-time code for the password reset flow.
// Stored in the database so codes survive restarts and multiple instances.
type PasswordReset struct {
	BaseModel
	Email     string    `json:"email" gorm:"size:200;not null;index" validate:"required,email"`
	Code      string    `json:"-" gorm:"size:12;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
}

// TableName returns the table name for PasswordReset
func (PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired reports whether the code can no longer be redeemed
func (p *PasswordReset) IsExpired(now time.Time) bool {
	return p.Used || now.After(p.ExpiresAt)
}
