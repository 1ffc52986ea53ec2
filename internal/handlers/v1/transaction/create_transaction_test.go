package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// mockIdentity is a mock for identityResolver.
type mockIdentity struct {
	mock.Mock
}

func (m *mockIdentity) Authenticate(ctx context.Context, authorization string) (*service.User, error) {
	args := m.Called(ctx, authorization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func allowCaller(userID int64) *mockIdentity {
	identity := new(mockIdentity)
	identity.On("Authenticate", mock.Anything, mock.Anything).
		Return(&service.User{ID: userID, Username: "asha"}, nil)
	return identity
}

func denyCaller() *mockIdentity {
	identity := new(mockIdentity)
	identity.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCredentials)
	return identity
}

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Create(ctx context.Context, userID int64, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, userID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func sampleCreated(id int64) *service.Transaction {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &service.Transaction{
		ID:         id,
		PassbookID: 3,
		TxnType:    service.TxnTypeDebit,
		Amount:     decimal.RequireFromString("42.50"),
		TxnDate:    now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, int64(7), mock.MatchedBy(func(c service.TransactionCreate) bool {
		return c.PassbookID == 3 &&
			c.TxnType == service.TxnTypeDebit &&
			c.Amount.Equal(decimal.RequireFromString("42.50"))
	})).Return(sampleCreated(1), nil)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "debit",
		Amount:     "42.50",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "42.5", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_BadTxnType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	// The enum rejects anything but debit or credit before the handler runs.
	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "transfer",
		Amount:     "42.50",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_NegativeAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "credit",
		Amount:     "-5.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_ZeroAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "credit",
		Amount:     "0",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_MalformedAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "debit",
		Amount:     "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_PassbookNotOwned(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, int64(7), mock.Anything).
		Return(nil, service.ErrNotFound)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "debit",
		Amount:     "42.50",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_BadToken(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(denyCaller(), mockSvc).Register(api)

	resp := api.Post("/v1/transactions", "Authorization: Bearer expired", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "debit",
		Amount:     "42.50",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(allowCaller(7), mockSvc).Register(api)

	// format:"date-time" schema validation rejects this before the handler runs.
	resp := api.Post("/v1/transactions", "Authorization: Bearer token", CreateTransactionBody{
		PassbookID: 3,
		TxnType:    "debit",
		Amount:     "42.50",
		TxnDate:    "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}
