package services

import (
	"context"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// ProfileReaderSvc defines read operations for profile data.
type ProfileReaderSvc interface {
	// GetProfileByID retrieves a profile by its ID.
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// ListProfiles retrieves a paginated list of profiles.
	ListProfiles(ctx context.Context, params dto.ListProfilesParams) ([]domain.Profile, error)
}

// ProfileWriterSvc defines write operations for profile data.
type ProfileWriterSvc interface {
	// CreateProfile registers a new profile with a hashed password.
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest, creatorUserID string) (*domain.Profile, error)

	// UpdateProfile updates a profile's details.
	UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, requestingUserID string) (*domain.Profile, error)

	// DeleteProfile soft-deletes a profile.
	DeleteProfile(ctx context.Context, profileID string, requestingUserID string) error

	// SetDepartments replaces a profile's department memberships.
	SetDepartments(ctx context.Context, profileID string, departmentIDs []string, requestingUserID string) error
}

// AuthenticatorSvc defines credential verification and session bookkeeping.
type AuthenticatorSvc interface {
	// AuthenticateByPassword verifies email+password credentials.
	AuthenticateByPassword(ctx context.Context, email string, password string) (*domain.Profile, error)

	// FindOrCreateByGoogleIdentity resolves the profile for a verified
	// Google identity, registering one on first login.
	FindOrCreateByGoogleIdentity(ctx context.Context, email string, fullName string) (*domain.Profile, error)

	// StoreRefreshTokenHash records the hash and expiry of the issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, profileID string, tokenHash string, expiry time.Time) error
}

// PermissionResolverSvc derives the caller's permission context. It is the
// single consumer-facing entry point of the permission rule, so the
// derivation cannot drift between features.
type PermissionResolverSvc interface {
	// GetPermissionContext resolves the permission level and department
	// memberships for a profile.
	GetPermissionContext(ctx context.Context, profileID string) (*domain.PermissionContext, error)
}

// ProfileSvcFacade combines all profile-related service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
	AuthenticatorSvc
	PermissionResolverSvc
}
