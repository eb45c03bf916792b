package services

import (
	"context"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// GoogleIdentity is the subset of a verified Google ID token the
// application cares about.
type GoogleIdentity struct {
	Email    string
	FullName string
}

// TokenSvcFacade handles JWT access tokens, refresh tokens and external
// identity token validation.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given profile.
	GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token for the given profile.
	GenerateRefreshToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string and
	// returns the associated profile.
	ValidateAndParseRefreshToken(ctx context.Context, profileID string, refreshToken string) (*domain.Profile, error)

	// ValidateGoogleIDToken verifies a Google ID token and extracts the identity.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error)

	// ExchangeGoogleCode exchanges an OAuth authorization code for the
	// Google ID token embedded in the token response.
	ExchangeGoogleCode(ctx context.Context, code string) (string, error)
}
