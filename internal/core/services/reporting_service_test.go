package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepositoryFacade interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardSummary(ctx context.Context, monthStart time.Time, lowStockMax int64) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, monthStart, lowStockMax)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_Success() {
	ctx := context.Background()
	expected := &domain.DashboardSummary{
		TotalIncome:            decimal.NewFromInt(5000),
		TotalExpense:           decimal.NewFromInt(1200),
		Balance:                decimal.NewFromInt(3800),
		PendingReceiptCount:    2,
		LowStockItemCount:      4,
		OutOfStockItemCount:    1,
		ConsultationsThisMonth: 7,
		VaccinationsThisMonth:  12,
	}

	suite.mockRepo.On("GetDashboardSummary", ctx, mock.MatchedBy(func(monthStart time.Time) bool {
		now := time.Now()
		return monthStart.Day() == 1 &&
			monthStart.Month() == now.Month() &&
			monthStart.Year() == now.Year() &&
			monthStart.Hour() == 0
	}), int64(10)).Return(expected, nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.Equal(4, summary.LowStockItemCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("query failed")

	suite.mockRepo.On("GetDashboardSummary", ctx, mock.AnythingOfType("time.Time"), int64(10)).Return(nil, repoErr).Once()

	summary, err := suite.service.GetDashboardSummary(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Nil(summary)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
