package repositories

import (
	"context"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ProfileReader defines read operations for profile data.
type ProfileReader interface {
	// FindProfileByID retrieves a profile by its unique identifier.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// FindProfileByEmail retrieves a profile by email, excluding soft-deleted rows.
	FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// ListProfiles retrieves a paginated list of profiles.
	ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error)

	// ListDepartmentsForProfile retrieves the departments a profile belongs to.
	ListDepartmentsForProfile(ctx context.Context, profileID string) ([]domain.Department, error)
}

// ProfileWriter defines write operations for profile data.
type ProfileWriter interface {
	// SaveProfile persists a new profile.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// UpdateProfile persists changes to an existing profile.
	UpdateProfile(ctx context.Context, profile domain.Profile) error

	// MarkProfileDeleted soft-deletes a profile.
	MarkProfileDeleted(ctx context.Context, profileID string, deletedByUserID string, deletedAt time.Time) error

	// UpdateRefreshToken stores the hash and expiry of the current refresh token.
	UpdateRefreshToken(ctx context.Context, profileID string, tokenHash *string, expiryTime *time.Time) error

	// SetDepartmentMemberships replaces the profile's department memberships.
	SetDepartmentMemberships(ctx context.Context, profileID string, departmentIDs []string) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
