package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/core/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockVaccinationRepository is a mock type for the VaccinationRepositoryFacade interface
type MockVaccinationRepository struct {
	mock.Mock
}

func (m *MockVaccinationRepository) FindVaccinationByID(ctx context.Context, recordID string) (*domain.VaccinationRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) ListVaccinations(ctx context.Context, filter domain.VaccinationFilter, limit int, offset int) ([]domain.VaccinationRecord, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) SaveVaccination(ctx context.Context, record domain.VaccinationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVaccinationRepository) UpdateVaccination(ctx context.Context, record domain.VaccinationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVaccinationRepository) DeleteVaccination(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

type VaccinationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVaccinationRepository
	service  *services.VaccinationService
}

func (suite *VaccinationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVaccinationRepository)
	suite.service = services.NewVaccinationService(suite.mockRepo)
}

func (suite *VaccinationServiceTestSuite) TestCreateVaccination_ChildRecord() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	birthDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	guardian := "Mme Ngono"
	req := dto.CreateVaccinationRequest{
		Category:     "CHILD",
		PatientName:  "Bébé Ngono",
		BirthDate:    &birthDate,
		GuardianName: &guardian,
		VaccineName:  "BCG",
		DoseNumber:   1,
	}

	suite.mockRepo.On("SaveVaccination", ctx, mock.MatchedBy(func(r domain.VaccinationRecord) bool {
		return r.Category == domain.ChildVaccination && r.BirthDate != nil && r.BirthDate.Equal(birthDate)
	})).Return(nil).Once()

	record, err := suite.service.CreateVaccination(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.Equal(creatorUserID, record.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VaccinationServiceTestSuite) TestCreateVaccination_ChildWithoutBirthDate() {
	ctx := context.Background()
	req := dto.CreateVaccinationRequest{
		Category:    "CHILD",
		PatientName: "Bébé sans date",
		VaccineName: "BCG",
		DoseNumber:  1,
	}

	record, err := suite.service.CreateVaccination(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVaccination", mock.Anything, mock.Anything)
}

func (suite *VaccinationServiceTestSuite) TestCreateVaccination_PregnantWomanWithoutBirthDate() {
	ctx := context.Background()
	req := dto.CreateVaccinationRequest{
		Category:    "PREGNANT_WOMAN",
		PatientName: "Mme Essomba",
		VaccineName: "VAT",
		DoseNumber:  2,
	}

	suite.mockRepo.On("SaveVaccination", ctx, mock.MatchedBy(func(r domain.VaccinationRecord) bool {
		return r.Category == domain.PregnantVaccination && r.BirthDate == nil
	})).Return(nil).Once()

	record, err := suite.service.CreateVaccination(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestVaccinationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VaccinationServiceTestSuite))
}
