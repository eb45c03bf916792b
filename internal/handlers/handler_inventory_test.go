package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, itemID string, requestingUserID string) error {
	args := m.Called(ctx, itemID, requestingUserID)
	return args.Error(0)
}

func (m *MockInventoryService) UseStock(ctx context.Context, itemID string, used int64, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, used, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Restock(ctx context.Context, itemID string, amount int64, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, amount, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTransactions(ctx context.Context, records []domain.Transaction, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

func (m *MockExportService) ExportInventory(ctx context.Context, records []domain.InventoryItem, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

func (m *MockExportService) ExportReceipts(ctx context.Context, records []domain.Receipt, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

func (m *MockExportService) ExportConsultations(ctx context.Context, records []domain.Consultation, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

func (m *MockExportService) ExportVaccinations(ctx context.Context, records []domain.VaccinationRecord, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Test Suite Setup ---

type InventoryHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockInventoryService *MockInventoryService
	mockExportService    *MockExportService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *InventoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockInventoryService = new(MockInventoryService)
	suite.mockExportService = new(MockExportService)

	v1 := suite.router.Group("/api/v1")
	registerInventoryRoutes(v1, suite.mockInventoryService, suite.mockExportService)
}

// --- Test Cases ---

func (suite *InventoryHandlerTestSuite) TestCreateItem_Success() {
	userID := uuid.NewString()
	created := &domain.InventoryItem{ItemID: uuid.NewString(), Name: "Gants stériles", Unit: "boîte", Quantity: 40}

	suite.mockInventoryService.On("CreateItem", mock.Anything, mock.AnythingOfType("dto.CreateItemRequest"), userID).Return(created, nil).Once()

	body := `{"name":"Gants stériles","unit":"boîte","quantity":40}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ItemID, resp.ItemID)
	suite.Equal(int64(40), resp.Quantity)
	suite.mockInventoryService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestUseStock_InsufficientStock() {
	userID := uuid.NewString()
	itemID := uuid.NewString()

	suite.mockInventoryService.On("UseStock", mock.Anything, itemID, int64(50), userID).Return(nil, apperrors.ErrInsufficientStock).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+itemID+"/use", strings.NewReader(`{"used":50}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Stock insuffisant", resp.Error)
	suite.mockInventoryService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestUseStock_InvalidBody() {
	userID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+uuid.NewString()+"/use", strings.NewReader(`{"used":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Données invalides: le champ Used est requis", resp.Error)
	suite.mockInventoryService.AssertNotCalled(suite.T(), "UseStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryHandlerTestSuite) TestCreateItem_BlankName() {
	userID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(`{"name":"   ","quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Données invalides: le champ Name est requis", resp.Error)
	suite.mockInventoryService.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryHandlerTestSuite) TestUseStock_ValidationDetailSurfaced() {
	userID := uuid.NewString()
	itemID := uuid.NewString()
	svcErr := fmt.Errorf("%w: used quantity must be strictly positive", apperrors.ErrValidation)

	suite.mockInventoryService.On("UseStock", mock.Anything, itemID, int64(3), userID).Return(nil, svcErr).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+itemID+"/use", strings.NewReader(`{"used":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Données invalides: used quantity must be strictly positive", resp.Error)
	suite.mockInventoryService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestListItems_Unauthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Non autorisé")
}

func (suite *InventoryHandlerTestSuite) TestExportItems_UnknownFormat() {
	userID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/export?format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Format d'export inconnu")
}

func (suite *InventoryHandlerTestSuite) TestExportItems_XLSX() {
	userID := uuid.NewString()
	items := []domain.InventoryItem{{ItemID: uuid.NewString(), Name: "Compresses", Quantity: 5}}
	file := &portssvc.ExportFile{
		Filename:    "inventaire_2025-03-10.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("workbook-bytes"),
	}

	suite.mockInventoryService.On("ListItems", mock.Anything, mock.AnythingOfType("dto.ListItemsParams")).Return(items, nil).Once()
	suite.mockExportService.On("ExportInventory", mock.Anything, items, portssvc.ExportXLSX).Return(file, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/export", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(file.ContentType, w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), file.Filename)
	suite.Equal("workbook-bytes", w.Body.String())
	suite.mockExportService.AssertExpectations(suite.T())
}

func TestInventoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}
