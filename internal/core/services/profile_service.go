package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/MboaHealth/hospital_admin_app/internal/utils"
	"github.com/google/uuid"
)

// ProfileService implements profile CRUD, authentication and permission
// resolution on top of the profile repository.
type ProfileService struct {
	profileRepo portsrepo.ProfileRepositoryFacade
}

func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*ProfileService)(nil)

func (s *ProfileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find profile by ID", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context, params dto.ListProfilesParams) ([]domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	profiles, err := s.profileRepo.ListProfiles(ctx, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list profiles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if profiles == nil {
		return []domain.Profile{}, nil
	}
	return profiles, nil
}

func (s *ProfileService) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, creatorUserID string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := domain.Profile{
		ProfileID:    uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save profile", slog.String("error", err.Error()), slog.String("email", req.Email))
		}
		return nil, err
	}

	logger.Info("Profile created", slog.String("profile_id", profile.ProfileID))
	return &profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, requestingUserID string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Role != nil {
		profile.Role = *req.Role
	}
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = requestingUserID

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		logger.Error("Failed to update profile", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		return nil, err
	}

	logger.Info("Profile updated", slog.String("profile_id", profileID))
	return profile, nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, profileID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.profileRepo.MarkProfileDeleted(ctx, profileID, requestingUserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete profile", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		}
		return err
	}

	logger.Info("Profile deleted", slog.String("profile_id", profileID))
	return nil
}

func (s *ProfileService) SetDepartments(ctx context.Context, profileID string, departmentIDs []string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.profileRepo.FindProfileByID(ctx, profileID); err != nil {
		return err
	}

	if err := s.profileRepo.SetDepartmentMemberships(ctx, profileID, departmentIDs); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to set department memberships", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		}
		return err
	}

	logger.Info("Department memberships replaced", slog.String("profile_id", profileID), slog.Int("count", len(departmentIDs)))
	return nil
}

// AuthenticateByPassword verifies credentials. It returns
// apperrors.ErrUnauthorized for both an unknown email and a wrong password
// so callers cannot probe which emails exist.
func (s *ProfileService) AuthenticateByPassword(ctx context.Context, email string, password string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to find profile by email", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, profile.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return profile, nil
}

// FindOrCreateByGoogleIdentity resolves the profile for a verified Google
// identity, registering a regular staff profile on first login.
func (s *ProfileService) FindOrCreateByGoogleIdentity(ctx context.Context, email string, fullName string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up profile for Google identity", slog.String("error", err.Error()))
		return nil, err
	}

	// First Google login. Password-based login stays impossible for this
	// profile since no password is ever set.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder secret: %w", err)
	}
	hash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder secret: %w", err)
	}

	now := time.Now()
	newProfile := domain.Profile{
		ProfileID:    uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newProfile.CreatedBy = newProfile.ProfileID
	newProfile.LastUpdatedBy = newProfile.ProfileID

	if err := s.profileRepo.SaveProfile(ctx, newProfile); err != nil {
		logger.Error("Failed to register profile for Google identity", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Profile registered from Google identity", slog.String("profile_id", newProfile.ProfileID))
	return &newProfile, nil
}

func (s *ProfileService) StoreRefreshTokenHash(ctx context.Context, profileID string, tokenHash string, expiry time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.profileRepo.UpdateRefreshToken(ctx, profileID, &tokenHash, &expiry); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to store refresh token hash", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		}
		return err
	}
	return nil
}

// GetPermissionContext resolves the caller's permission level and department
// memberships. Every feature goes through this single derivation.
func (s *ProfileService) GetPermissionContext(ctx context.Context, profileID string) (*domain.PermissionContext, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load profile for permission resolution", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		return nil, err
	}
	if profile.DeletedAt != nil {
		return nil, apperrors.ErrUnauthorized
	}

	departments, err := s.profileRepo.ListDepartmentsForProfile(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load departments for permission resolution", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		return nil, err
	}

	names := make([]string, len(departments))
	ids := make([]string, len(departments))
	for i, d := range departments {
		names[i] = d.Name
		ids[i] = d.DepartmentID
	}

	return &domain.PermissionContext{
		ProfileID:     profileID,
		Level:         domain.ResolvePermission(true, profile.Role, names),
		DepartmentIDs: ids,
	}, nil
}
