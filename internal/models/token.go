package models

import "time"

// Token is a stored single-use credential for the password-reset flow.
// It must be verified (VerifiedAt set) before it can authorize a password
// change, and is deleted once consumed.
type Token struct {
	BaseModel
	Code       string     `gorm:"uniqueIndex;not null" json:"code"`
	Type       TokenType  `gorm:"type:varchar(20);not null" json:"type"`
	UserID     string     `gorm:"not null;index" json:"user_id"`
	VerifiedAt *time.Time `json:"verified_at"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
}
