package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/handlers"
	"github.com/Oligens/scarwrite.haiti-sub001/pkg/config"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

func (m *MockExpenseService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, recordedBy string) (*domain.PostingResult, error) {
	args := m.Called(ctx, req, recordedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

// --- Stub services for routes this suite does not exercise ---
type stubTransactionService struct{}

func (stubTransactionService) RecordTransaction(context.Context, dto.RecordTransactionRequest, string) (*domain.PostingResult, error) {
	return nil, apperrors.ErrNotFound
}

type stubSaleService struct{}

func (stubSaleService) RecordSale(context.Context, dto.RecordSaleRequest, string) (*domain.PostingResult, error) {
	return nil, apperrors.ErrNotFound
}

type stubJournalService struct{}

func (stubJournalService) ListEntries(context.Context, dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	return nil, nil
}
func (stubJournalService) GetTransaction(context.Context, string) ([]domain.JournalEntry, error) {
	return nil, apperrors.ErrNotFound
}
func (stubJournalService) Summarize(context.Context, time.Time, time.Time) ([]domain.SourceSummary, error) {
	return nil, nil
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(context.Context, dto.CreateAccountRequest, string) (*domain.Account, error) {
	return nil, apperrors.ErrDuplicate
}
func (stubAccountService) GetAccountByCode(context.Context, string) (*domain.Account, error) {
	return nil, apperrors.ErrNotFound
}
func (stubAccountService) ListAccounts(context.Context, int, int) ([]domain.Account, error) {
	return nil, nil
}
func (stubAccountService) DeactivateAccount(context.Context, string, string) error {
	return apperrors.ErrNotFound
}

type stubTaxConfigService struct{}

func (stubTaxConfigService) CreateTaxConfig(context.Context, dto.CreateTaxConfigRequest, string) (*domain.TaxConfig, error) {
	return nil, apperrors.ErrNotFound
}
func (stubTaxConfigService) ListTaxConfigs(context.Context, bool) ([]domain.TaxConfig, error) {
	return nil, nil
}
func (stubTaxConfigService) UpdateTaxConfig(context.Context, string, dto.UpdateTaxConfigRequest, string) (*domain.TaxConfig, error) {
	return nil, apperrors.ErrNotFound
}
func (stubTaxConfigService) DeleteTaxConfig(context.Context, string) error {
	return apperrors.ErrNotFound
}

type stubProductService struct{}

func (stubProductService) CreateProduct(context.Context, dto.CreateProductRequest, string) (*domain.Product, error) {
	return nil, apperrors.ErrNotFound
}
func (stubProductService) GetProductByID(context.Context, string) (*domain.Product, error) {
	return nil, apperrors.ErrNotFound
}
func (stubProductService) ListProducts(context.Context, int, int) ([]domain.Product, error) {
	return nil, nil
}

type stubThirdPartyService struct{}

func (stubThirdPartyService) ListThirdParties(context.Context, domain.ThirdPartyRole, int, int) ([]domain.ThirdParty, error) {
	return nil, nil
}
func (stubThirdPartyService) GetThirdPartyByID(context.Context, string) (*domain.ThirdParty, error) {
	return nil, apperrors.ErrNotFound
}

type stubSettingsService struct{}

func (stubSettingsService) GetSettings(context.Context) (*domain.Settings, error) {
	return &domain.Settings{}, nil
}
func (stubSettingsService) UpdateSettings(context.Context, dto.UpdateSettingsRequest, string) (*domain.Settings, error) {
	return &domain.Settings{}, nil
}

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *MockExpenseService
	mockAuthService    *MockAuthService
	jwtSecret          string
}

func (suite *ExpenseHandlerTestSuite) generateTestToken(operator string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "scarwrite-test",
		Subject:   operator,
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

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidations())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockExpenseService = new(MockExpenseService)
	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "100-M",
	}
	services := &portssvc.ServiceContainer{
		Auth:        suite.mockAuthService,
		Expense:     suite.mockExpenseService,
		Transaction: stubTransactionService{},
		Sale:        stubSaleService{},
		Journal:     stubJournalService{},
		Account:     stubAccountService{},
		TaxConfig:   stubTaxConfigService{},
		Product:     stubProductService{},
		ThirdParty:  stubThirdPartyService{},
		Settings:    stubSettingsService{},
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ExpenseHandlerTestSuite) postExpense(body any, token string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExpenseHandlerTestSuite) TestRecordExpense_Success() {
	req := dto.RecordExpenseRequest{
		Date:        "2025-03-15",
		Description: "Loyer mars",
		Amount:      decimal.NewFromInt(1500),
	}
	result := &domain.PostingResult{
		TransactionID: "txn-1",
		Entries: []domain.JournalEntry{
			{EntryID: "e1", TransactionID: "txn-1", AccountCode: "601", Debit: decimal.NewFromInt(1500)},
			{EntryID: "e2", TransactionID: "txn-1", AccountCode: "5311", Credit: decimal.NewFromInt(1500)},
		},
		ThirdPartyUpdate: domain.ThirdPartySkipped,
	}
	suite.mockExpenseService.On("RecordExpense", mock.Anything, req, "operator").Return(result, nil).Once()

	w := suite.postExpense(req, suite.generateTestToken("operator"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Len(resp.Entries, 2)
	suite.Equal(string(domain.ThirdPartySkipped), resp.ThirdPartyUpdate)
	suite.Empty(resp.Warning)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestRecordExpense_ThirdPartyFailureCarriesWarning() {
	req := dto.RecordExpenseRequest{
		Date:           "2025-03-15",
		Description:    "Achat stock",
		Amount:         decimal.NewFromInt(1500),
		IsCredit:       true,
		DownPayment:    decimal.NewFromInt(400),
		ThirdPartyName: "Depot Jumelle",
	}
	result := &domain.PostingResult{
		TransactionID: "txn-2",
		Entries: []domain.JournalEntry{
			{EntryID: "e1", AccountCode: "601", Debit: decimal.NewFromInt(1500)},
			{EntryID: "e2", AccountCode: "5311", Credit: decimal.NewFromInt(400)},
			{EntryID: "e3", AccountCode: "401", Credit: decimal.NewFromInt(1100)},
		},
		ThirdPartyUpdate: domain.ThirdPartyFailed,
		ThirdPartyErr:    apperrors.ErrThirdPartyUpdateFailed,
	}
	suite.mockExpenseService.On("RecordExpense", mock.Anything, req, "operator").Return(result, nil).Once()

	w := suite.postExpense(req, suite.generateTestToken("operator"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.ThirdPartyFailed), resp.ThirdPartyUpdate)
	suite.NotEmpty(resp.Warning)
}

func (suite *ExpenseHandlerTestSuite) TestRecordExpense_NoToken_Unauthorized() {
	req := dto.RecordExpenseRequest{
		Date:        "2025-03-15",
		Description: "Loyer mars",
		Amount:      decimal.NewFromInt(1500),
	}

	w := suite.postExpense(req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestRecordExpense_BindError() {
	w := suite.postExpense(map[string]any{"description": "no amount or date"}, suite.generateTestToken("operator"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestRecordExpense_ServiceValidationError() {
	req := dto.RecordExpenseRequest{
		Date:           "2025-03-15",
		Description:    "Achat stock",
		Amount:         decimal.NewFromInt(100),
		IsCredit:       true,
		DownPayment:    decimal.NewFromInt(200),
		ThirdPartyName: "Depot Jumelle",
	}
	suite.mockExpenseService.On("RecordExpense", mock.Anything, req, "operator").
		Return(nil, apperrors.ErrInvalidInstalment).Once()

	w := suite.postExpense(req, suite.generateTestToken("operator"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestLogin_Success() {
	suite.mockAuthService.On("Login", mock.Anything, "admin", "s3cret").
		Return(&dto.LoginResponse{Token: "jwt-token", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	payload, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("jwt-token", resp.Token)
}

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
