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

// MockInventoryRepository is a mock type for the InventoryRepositoryFacade interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, filter domain.InventoryFilter, limit int, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockInventoryRepository) ApplyStockUsage(ctx context.Context, itemID string, used int64, userID string, now time.Time) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, used, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) Restock(ctx context.Context, itemID string, amount int64, userID string, now time.Time) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, amount, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

// --- Test Suite Setup ---

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  *services.InventoryService
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestListItems_LowStockFilter() {
	ctx := context.Background()
	bound := int64(5)
	items := []domain.InventoryItem{{ItemID: uuid.NewString(), Name: "Compresses", Quantity: 3}}

	suite.mockRepo.On("ListItems", ctx, mock.MatchedBy(func(f domain.InventoryFilter) bool {
		return f.LowStockMax != nil && *f.LowStockMax == bound && !f.OutOfStock
	}), 20, 0).Return(items, nil).Once()

	got, err := suite.service.ListItems(ctx, dto.ListItemsParams{LowStockMax: &bound, Limit: 20})

	suite.Require().NoError(err)
	suite.Equal(items, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateItemRequest{
		Name:     "Gants stériles",
		Unit:     "boîte",
		Quantity: 40,
	}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.Equal(req.Name, item.Name)
	suite.Equal(req.Unit, item.Unit)
	suite.Equal(int64(40), item.Quantity)
	suite.Equal(int64(0), item.UsedQuantity)
	suite.Equal(creatorUserID, item.CreatedBy)
	suite.WithinDuration(time.Now(), item.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_NegativeQuantity() {
	ctx := context.Background()
	req := dto.CreateItemRequest{Name: "Compresses", Unit: "paquet", Quantity: -1}

	item, err := suite.service.CreateItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestCreateItem_Duplicate() {
	ctx := context.Background()
	req := dto.CreateItemRequest{Name: "Gants stériles", Unit: "boîte", Quantity: 10}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(apperrors.ErrDuplicate).Once()

	item, err := suite.service.CreateItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(item)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_MergesFields() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.InventoryItem{
		ItemID:   itemID,
		Name:     "Seringues",
		Unit:     "pièce",
		Quantity: 100,
	}
	newName := "Seringues 5ml"

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.Name == newName && item.Unit == "pièce" && item.Quantity == 100
	})).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateItemRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestUseStock_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	userID := uuid.NewString()
	after := &domain.InventoryItem{ItemID: itemID, Name: "Gants", Quantity: 2, UsedQuantity: 3}

	suite.mockRepo.On("ApplyStockUsage", ctx, itemID, int64(3), userID, mock.AnythingOfType("time.Time")).Return(after, nil).Once()

	item, err := suite.service.UseStock(ctx, itemID, 3, userID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), item.Quantity)
	suite.Equal(int64(3), item.UsedQuantity)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestUseStock_NonPositive() {
	ctx := context.Background()

	_, err := suite.service.UseStock(ctx, uuid.NewString(), 0, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyStockUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestUseStock_InsufficientStock() {
	ctx := context.Background()
	itemID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("ApplyStockUsage", ctx, itemID, int64(5), userID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrInsufficientStock).Once()

	item, err := suite.service.UseStock(ctx, itemID, 5, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(item)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRestock_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	userID := uuid.NewString()
	after := &domain.InventoryItem{ItemID: itemID, Quantity: 25}

	suite.mockRepo.On("Restock", ctx, itemID, int64(20), userID, mock.AnythingOfType("time.Time")).Return(after, nil).Once()

	item, err := suite.service.Restock(ctx, itemID, 20, userID)

	suite.Require().NoError(err)
	suite.Equal(int64(25), item.Quantity)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRestock_NonPositive() {
	ctx := context.Background()

	_, err := suite.service.Restock(ctx, uuid.NewString(), -4, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Restock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
