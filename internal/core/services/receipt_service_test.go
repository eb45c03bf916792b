package services_test

import (
	"context"
	"testing"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/core/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockReceiptRepository
	mockPermissions *MockPermissionResolver
	service         *services.ReceiptService
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReceiptRepository)
	suite.mockPermissions = new(MockPermissionResolver)
	suite.service = services.NewReceiptService(suite.mockRepo, suite.mockPermissions)
}

func (suite *ReceiptServiceTestSuite) TestExecuteReceipt_MemberOfDepartment() {
	ctx := context.Background()
	userID := uuid.NewString()
	departmentID := uuid.NewString()
	receiptID := uuid.NewString()

	suite.mockRepo.On("FindReceiptByID", ctx, receiptID).Return(&domain.Receipt{
		ReceiptID:    receiptID,
		DepartmentID: departmentID,
	}, nil).Once()
	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID:     userID,
		Level:         domain.PermissionRegular,
		DepartmentIDs: []string{departmentID},
	}, nil).Once()
	suite.mockRepo.On("DeleteReceipt", ctx, receiptID).Return(nil).Once()

	err := suite.service.ExecuteReceipt(ctx, receiptID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestExecuteReceipt_ForeignDepartmentRegularUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	receiptID := uuid.NewString()

	suite.mockRepo.On("FindReceiptByID", ctx, receiptID).Return(&domain.Receipt{
		ReceiptID:    receiptID,
		DepartmentID: uuid.NewString(),
	}, nil).Once()
	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID:     userID,
		Level:         domain.PermissionRegular,
		DepartmentIDs: []string{uuid.NewString()},
	}, nil).Once()

	err := suite.service.ExecuteReceipt(ctx, receiptID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestExecuteReceipt_ForeignDepartmentManagement() {
	ctx := context.Background()
	userID := uuid.NewString()
	receiptID := uuid.NewString()

	suite.mockRepo.On("FindReceiptByID", ctx, receiptID).Return(&domain.Receipt{
		ReceiptID:    receiptID,
		DepartmentID: uuid.NewString(),
	}, nil).Once()
	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID: userID,
		Level:     domain.PermissionManagement,
	}, nil).Once()
	suite.mockRepo.On("DeleteReceipt", ctx, receiptID).Return(nil).Once()

	err := suite.service.ExecuteReceipt(ctx, receiptID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestExecuteReceipt_NotFound() {
	ctx := context.Background()
	receiptID := uuid.NewString()

	suite.mockRepo.On("FindReceiptByID", ctx, receiptID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ExecuteReceipt(ctx, receiptID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestGetReceiptByID_ScopedForRegularUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	receiptID := uuid.NewString()

	suite.mockRepo.On("FindReceiptByID", ctx, receiptID).Return(&domain.Receipt{
		ReceiptID:    receiptID,
		DepartmentID: uuid.NewString(),
	}, nil).Once()
	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID: userID,
		Level:     domain.PermissionRegular,
	}, nil).Once()

	receipt, err := suite.service.GetReceiptByID(ctx, receiptID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(receipt)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_RegularUserWithoutMemberships() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID: userID,
		Level:     domain.PermissionRegular,
	}, nil).Once()

	receipts, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{Limit: 20}, userID)

	suite.Require().NoError(err)
	suite.Empty(receipts)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListReceipts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_AdminUnscoped() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockPermissions.On("GetPermissionContext", ctx, userID).Return(&domain.PermissionContext{
		ProfileID: userID,
		Level:     domain.PermissionAdmin,
	}, nil).Once()
	suite.mockRepo.On("ListReceipts", ctx, mock.MatchedBy(func(f domain.ReceiptFilter) bool {
		return len(f.DepartmentIDs) == 0
	}), 20, 0).Return([]domain.Receipt{{ReceiptID: uuid.NewString()}}, nil).Once()

	receipts, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{Limit: 20}, userID)

	suite.Require().NoError(err)
	suite.Len(receipts, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
