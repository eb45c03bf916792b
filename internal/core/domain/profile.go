package domain

import "time"

// Profile represents a staff member account.
type Profile struct {
	ProfileID string `json:"profileID"` // Primary Key (UUID)
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"` // "admin" or empty for regular staff
	AuditFields
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
