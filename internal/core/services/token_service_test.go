package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/utils"
	"github.com/MboaHealth/hospital_admin_app/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

// fakeProfileRepo implements the profile repository facade for token tests.
type fakeProfileRepo struct {
	mock.Mock
}

func (m *fakeProfileRepo) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *fakeProfileRepo) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *fakeProfileRepo) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *fakeProfileRepo) ListDepartmentsForProfile(ctx context.Context, profileID string) ([]domain.Department, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *fakeProfileRepo) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *fakeProfileRepo) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *fakeProfileRepo) MarkProfileDeleted(ctx context.Context, profileID string, deletedByUserID string, deletedAt time.Time) error {
	return m.Called(ctx, profileID, deletedByUserID, deletedAt).Error(0)
}

func (m *fakeProfileRepo) UpdateRefreshToken(ctx context.Context, profileID string, tokenHash *string, expiryTime *time.Time) error {
	return m.Called(ctx, profileID, tokenHash, expiryTime).Error(0)
}

func (m *fakeProfileRepo) SetDepartmentMemberships(ctx context.Context, profileID string, departmentIDs []string) error {
	return m.Called(ctx, profileID, departmentIDs).Error(0)
}

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTIssuer:                  "hms-test",
		JWTExpiryDuration:          15 * time.Minute,
		RefreshTokenExpiryDuration: 24 * time.Hour,
		GoogleClientID:             "test-client-id",
	}
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	repo := new(fakeProfileRepo)
	svc := NewTokenService(testTokenConfig(), repo)
	profile := &domain.Profile{ProfileID: uuid.NewString()}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret-key-that-is-long-enough")
	require.NoError(t, err)
	assert.Equal(t, profile.ProfileID, claims.Subject)
	assert.Equal(t, "hms-test", claims.Issuer)
}

func TestGenerateRefreshToken_StoresHash(t *testing.T) {
	repo := new(fakeProfileRepo)
	svc := NewTokenService(testTokenConfig(), repo)
	profile := &domain.Profile{ProfileID: uuid.NewString()}

	var storedHash string
	repo.On("UpdateRefreshToken", mock.Anything, profile.ProfileID, mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = *args.Get(2).(*string)
		}).Return(nil).Once()

	token, expiry, err := svc.GenerateRefreshToken(context.Background(), profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiry.After(time.Now()))

	// The opaque token itself is never stored, only its hash.
	assert.NotEqual(t, token, storedHash)
	assert.True(t, utils.CompareRefreshTokenHash(token, storedHash))
	repo.AssertExpectations(t)
}

func TestValidateAndParseRefreshToken(t *testing.T) {
	profileID := uuid.NewString()
	token := "opaque-refresh-token"
	hash := utils.HashRefreshToken(token)
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		profile *domain.Profile
		token   string
		wantErr error
	}{
		{
			name:    "valid token",
			profile: &domain.Profile{ProfileID: profileID, RefreshTokenHash: &hash, RefreshTokenExpiryTime: &future},
			token:   token,
		},
		{
			name:    "no stored token",
			profile: &domain.Profile{ProfileID: profileID},
			token:   token,
			wantErr: apperrors.ErrUnauthorized,
		},
		{
			name:    "expired token",
			profile: &domain.Profile{ProfileID: profileID, RefreshTokenHash: &hash, RefreshTokenExpiryTime: &past},
			token:   token,
			wantErr: apperrors.ErrUnauthorized,
		},
		{
			name:    "mismatched token",
			profile: &domain.Profile{ProfileID: profileID, RefreshTokenHash: &hash, RefreshTokenExpiryTime: &future},
			token:   "a different token",
			wantErr: apperrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(fakeProfileRepo)
			repo.On("FindProfileByID", mock.Anything, profileID).Return(tt.profile, nil).Once()
			svc := NewTokenService(testTokenConfig(), repo)

			profile, err := svc.ValidateAndParseRefreshToken(context.Background(), profileID, tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, profileID, profile.ProfileID)
		})
	}
}

func TestValidateGoogleIDToken(t *testing.T) {
	repo := new(fakeProfileRepo)
	svc := NewTokenService(testTokenConfig(), repo)

	svc.googleValidate = func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "test-client-id", audience)
		return &idtoken.Payload{Claims: map[string]interface{}{
			"email": "doc@hopital.cm",
			"name":  "Dr Mballa",
		}}, nil
	}

	identity, err := svc.ValidateGoogleIDToken(context.Background(), "a-google-token")
	require.NoError(t, err)
	assert.Equal(t, "doc@hopital.cm", identity.Email)
	assert.Equal(t, "Dr Mballa", identity.FullName)
}

func TestValidateGoogleIDToken_Invalid(t *testing.T) {
	repo := new(fakeProfileRepo)
	svc := NewTokenService(testTokenConfig(), repo)
	svc.googleValidate = func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("signature mismatch")
	}

	identity, err := svc.ValidateGoogleIDToken(context.Background(), "bad-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Nil(t, identity)
}

func TestValidateGoogleIDToken_NotConfigured(t *testing.T) {
	cfg := testTokenConfig()
	cfg.GoogleClientID = ""
	svc := NewTokenService(cfg, new(fakeProfileRepo))

	identity, err := svc.ValidateGoogleIDToken(context.Background(), "any")
	require.Error(t, err)
	assert.Nil(t, identity)
}
