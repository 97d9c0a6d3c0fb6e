package models

import "time"

// User holds the account record. Password and the verification/reset tokens
// are stored only as hashes; the plain values never reach the database.
type User struct {
	BaseModel
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`

	IsEmailVerified          bool `gorm:"default:false"`
	EmailVerificationToken   string
	EmailVerificationExpires *time.Time

	ResetPasswordToken   string
	ResetPasswordExpires *time.Time
}

// ClearVerificationToken wipes the verification token fields after use.
func (u *User) ClearVerificationToken() {
	u.EmailVerificationToken = ""
	u.EmailVerificationExpires = nil
}

// ClearResetToken wipes the reset token fields after use.
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = nil
}
