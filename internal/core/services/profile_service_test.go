package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/core/services"
	"github.com/MboaHealth/hospital_admin_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockProfileRepository is a mock type for the ProfileRepositoryFacade interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListDepartmentsForProfile(ctx context.Context, profileID string) ([]domain.Department, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) MarkProfileDeleted(ctx context.Context, profileID string, deletedByUserID string, deletedAt time.Time) error {
	args := m.Called(ctx, profileID, deletedByUserID, deletedAt)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, tokenHash *string, expiryTime *time.Time) error {
	args := m.Called(ctx, profileID, tokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockProfileRepository) SetDepartmentMemberships(ctx context.Context, profileID string, departmentIDs []string) error {
	args := m.Called(ctx, profileID, departmentIDs)
	return args.Error(0)
}

type ProfileServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProfileRepository
	service  *services.ProfileService
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfileRepository)
	suite.service = services.NewProfileService(suite.mockRepo)
}

func (suite *ProfileServiceTestSuite) TestAuthenticateByPassword_Success() {
	ctx := context.Background()
	password := "correct horse battery staple"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	profile := &domain.Profile{
		ProfileID:    uuid.NewString(),
		Email:        "infirmiere@hopital.cm",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindProfileByEmail", ctx, profile.Email).Return(profile, nil).Once()

	got, err := suite.service.AuthenticateByPassword(ctx, profile.Email, password)

	suite.Require().NoError(err)
	suite.Equal(profile.ProfileID, got.ProfileID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestAuthenticateByPassword_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)

	profile := &domain.Profile{
		ProfileID:    uuid.NewString(),
		Email:        "infirmiere@hopital.cm",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindProfileByEmail", ctx, profile.Email).Return(profile, nil).Once()

	got, err := suite.service.AuthenticateByPassword(ctx, profile.Email, "a wrong guess")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *ProfileServiceTestSuite) TestAuthenticateByPassword_UnknownEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindProfileByEmail", ctx, "absent@hopital.cm").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateByPassword(ctx, "absent@hopital.cm", "whatever")

	suite.Require().Error(err)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *ProfileServiceTestSuite) TestFindOrCreateByGoogleIdentity_ExistingProfile() {
	ctx := context.Background()
	profile := &domain.Profile{ProfileID: uuid.NewString(), Email: "doc@hopital.cm"}
	suite.mockRepo.On("FindProfileByEmail", ctx, profile.Email).Return(profile, nil).Once()

	got, err := suite.service.FindOrCreateByGoogleIdentity(ctx, profile.Email, "Dr Mballa")

	suite.Require().NoError(err)
	suite.Equal(profile.ProfileID, got.ProfileID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestFindOrCreateByGoogleIdentity_FirstLogin() {
	ctx := context.Background()
	email := "nouveau@hopital.cm"
	suite.mockRepo.On("FindProfileByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.Email == email && p.FullName == "Nouveau Membre" && p.PasswordHash != ""
	})).Return(nil).Once()

	got, err := suite.service.FindOrCreateByGoogleIdentity(ctx, email, "Nouveau Membre")

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.NotEmpty(got.ProfileID)
	suite.Equal(got.ProfileID, got.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetPermissionContext_ManagementMember() {
	ctx := context.Background()
	profileID := uuid.NewString()
	profile := &domain.Profile{ProfileID: profileID, Role: "staff"}

	suite.mockRepo.On("FindProfileByID", ctx, profileID).Return(profile, nil).Once()
	suite.mockRepo.On("ListDepartmentsForProfile", ctx, profileID).Return([]domain.Department{
		{DepartmentID: "dep-1", Name: "Management"},
		{DepartmentID: "dep-2", Name: "Pharmacie"},
	}, nil).Once()

	pc, err := suite.service.GetPermissionContext(ctx, profileID)

	suite.Require().NoError(err)
	suite.Equal(domain.PermissionManagement, pc.Level)
	suite.ElementsMatch([]string{"dep-1", "dep-2"}, pc.DepartmentIDs)
}

func (suite *ProfileServiceTestSuite) TestGetPermissionContext_DeletedProfile() {
	ctx := context.Background()
	profileID := uuid.NewString()
	deletedAt := time.Now()
	profile := &domain.Profile{ProfileID: profileID, Role: "staff", DeletedAt: &deletedAt}

	suite.mockRepo.On("FindProfileByID", ctx, profileID).Return(profile, nil).Once()

	pc, err := suite.service.GetPermissionContext(ctx, profileID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(pc)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
