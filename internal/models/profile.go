package models

import "time"

// Profile represents a row of the profiles table.
type Profile struct {
	ProfileID              string     `json:"profileID"`
	FullName               string     `json:"fullName"`
	Email                  string     `json:"email"`
	Role                   string     `json:"role"`
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
