package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
	"github.com/gobooks/books_backend/internal/handlers"
	"github.com/gobooks/books_backend/internal/middleware"
	"github.com/gobooks/books_backend/internal/utils/fiscal"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, kind domain.PartyKind, includeInactive bool, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, kind, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	args := m.Called(ctx, kind, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	args := m.Called(ctx, partyID, userID)
	return args.Error(0)
}

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementSvc = (*MockStatementService)(nil)

func (m *MockStatementService) BuildStatement(ctx context.Context, partyID string, q fiscal.PeriodQuery) (*domain.Statement, error) {
	args := m.Called(ctx, partyID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockPartyService     *MockPartyService
	mockStatementService *MockStatementService
	jwtSecret            string
}

func (suite *PartyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "books-test",
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

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartyService = new(MockPartyService)
	suite.mockStatementService = new(MockStatementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartyRoutes(v1, suite.mockPartyService, suite.mockStatementService)
}

func (suite *PartyHandlerTestSuite) performRequest(method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PartyHandlerTestSuite) TestGetCustomer() {
	party := &domain.Party{
		PartyID:       "cust-1",
		Kind:          domain.Customer,
		Name:          "Acme Traders",
		PlaceOfSupply: "Karnataka",
		IsActive:      true,
	}
	suite.mockPartyService.On("GetPartyByID", mock.Anything, "cust-1").Return(party, nil)

	w := suite.performRequest(http.MethodGet, "/api/v1/customers/cust-1", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("cust-1", resp.PartyID)
	suite.Equal("CUSTOMER", resp.Kind)
}

func (suite *PartyHandlerTestSuite) TestGetVendorThroughCustomerRouteIs404() {
	party := &domain.Party{PartyID: "vend-1", Kind: domain.Vendor, Name: "Supplies Co"}
	suite.mockPartyService.On("GetPartyByID", mock.Anything, "vend-1").Return(party, nil)

	w := suite.performRequest(http.MethodGet, "/api/v1/customers/vend-1", nil, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PartyHandlerTestSuite) TestGetCustomerUnauthorized() {
	w := suite.performRequest(http.MethodGet, "/api/v1/customers/cust-1", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "GetPartyByID", mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestCreateCustomer() {
	created := &domain.Party{
		PartyID:  "cust-2",
		Kind:     domain.Customer,
		Name:     "New Traders",
		IsActive: true,
	}
	suite.mockPartyService.On("CreateParty", mock.Anything, domain.Customer, mock.AnythingOfType("dto.CreatePartyRequest"), "user-1").
		Return(created, nil)

	body, _ := json.Marshal(dto.CreatePartyRequest{
		Kind:          domain.Customer,
		Name:          "New Traders",
		PlaceOfSupply: "Karnataka",
	})
	w := suite.performRequest(http.MethodPost, "/api/v1/customers", body, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateCustomerInvalidBody() {
	w := suite.performRequest(http.MethodPost, "/api/v1/customers", []byte(`{"kind":"CUSTOMER"}`), suite.generateTestToken("user-1"))
	suite.Equal(http.StatusBadRequest, w.Code, "missing name must fail binding")
}

func (suite *PartyHandlerTestSuite) TestGetStatement() {
	stmt := &domain.Statement{
		Party:  domain.Party{PartyID: "cust-1", Kind: domain.Customer, Name: "Acme Traders"},
		Period: domain.Period{StartDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC)},
		OpeningBalance: decimal.NewFromInt(1000),
		Lines: []domain.StatementLine{
			{
				Date:           time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
				Kind:           domain.LineInvoice,
				DocumentNumber: "INV-00001",
				Debit:          decimal.NewFromInt(5000),
				RunningBalance: decimal.NewFromInt(6000),
			},
		},
		ClosingBalance: decimal.NewFromInt(6000),
		Summary:        domain.StatementSummary{TotalDebit: decimal.NewFromInt(5000), TransactionCount: 1},
	}
	suite.mockStatementService.On("BuildStatement", mock.Anything, "cust-1", mock.AnythingOfType("fiscal.PeriodQuery")).
		Return(stmt, nil)

	w := suite.performRequest(http.MethodGet, "/api/v1/customers/cust-1/statement?startDate=2023-04-01&endDate=2023-04-30", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.True(resp.ClosingBalance.Equal(decimal.NewFromInt(6000)), fmt.Sprintf("closing got %s", resp.ClosingBalance))
}

func (suite *PartyHandlerTestSuite) TestGetStatementUnknownMode() {
	stmt := &domain.Statement{
		Party:  domain.Party{PartyID: "cust-1", Kind: domain.Customer, Name: "Acme Traders"},
		Period: domain.Period{StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	var captured fiscal.PeriodQuery
	suite.mockStatementService.On("BuildStatement", mock.Anything, "cust-1", mock.AnythingOfType("fiscal.PeriodQuery")).
		Run(func(args mock.Arguments) { captured = args.Get(2).(fiscal.PeriodQuery) }).
		Return(stmt, nil)

	// A mode the resolver does not recognize is not a client error; it
	// passes through and matches none of the period modes.
	w := suite.performRequest(http.MethodGet, "/api/v1/customers/cust-1/statement?mode=quarterly", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("quarterly", captured.Mode)
	suite.Nil(captured.StartDate)
	suite.Nil(captured.EndDate)
}

func (suite *PartyHandlerTestSuite) TestGetStatementPartyNotFound() {
	suite.mockStatementService.On("BuildStatement", mock.Anything, "missing", mock.AnythingOfType("fiscal.PeriodQuery")).
		Return(nil, apperrors.ErrNotFound)

	w := suite.performRequest(http.MethodGet, "/api/v1/customers/missing/statement", nil, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPartyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
