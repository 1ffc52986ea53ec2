package business

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
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

// mockBusinessService is a mock for the business service interfaces.
type mockBusinessService struct {
	mock.Mock
}

func (m *mockBusinessService) Create(ctx context.Context, userID int64, create service.BusinessCreate) (*service.Business, error) {
	args := m.Called(ctx, userID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Business), args.Error(1)
}

func (m *mockBusinessService) Get(ctx context.Context, userID int64, id int64) (*service.Business, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Business), args.Error(1)
}

func validBody() CreateBusinessBody {
	return CreateBusinessBody{
		Name:        "Acme Traders",
		Industry:    "Retail",
		FoundedYear: 1998,
		Revenue:     120000,
		Employees:   14,
		Location:    "Pune",
	}
}

func TestHTTP_CreateBusiness_Success(t *testing.T) {
	mockSvc := new(mockBusinessService)
	mockSvc.On("Create", mock.Anything, int64(7), mock.MatchedBy(func(c service.BusinessCreate) bool {
		return c.Name == "Acme Traders" && c.FoundedYear == 1998 && c.Employees == 14
	})).Return(&service.Business{ID: 1, UserID: 7, Name: "Acme Traders"}, nil)

	_, api := humatest.New(t)
	NewCreateBusinessHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/businesses", "Authorization: Bearer token", validBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Business
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, int64(7), body.UserID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBusiness_BadToken(t *testing.T) {
	mockSvc := new(mockBusinessService)

	_, api := humatest.New(t)
	NewCreateBusinessHandler(denyCaller(), mockSvc).Register(api)

	resp := api.Post("/v1/businesses", "Authorization: Bearer expired", validBody())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateBusiness_FoundedYearOutOfRange(t *testing.T) {
	mockSvc := new(mockBusinessService)

	_, api := humatest.New(t)
	NewCreateBusinessHandler(allowCaller(7), mockSvc).Register(api)

	body := validBody()
	body.FoundedYear = 1750

	// Schema validation rejects the request before the handler runs.
	resp := api.Post("/v1/businesses", "Authorization: Bearer token", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateBusiness_ZeroEmployees(t *testing.T) {
	mockSvc := new(mockBusinessService)

	_, api := humatest.New(t)
	NewCreateBusinessHandler(allowCaller(7), mockSvc).Register(api)

	body := validBody()
	body.Employees = 0

	resp := api.Post("/v1/businesses", "Authorization: Bearer token", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateBusiness_MissingName(t *testing.T) {
	mockSvc := new(mockBusinessService)

	_, api := humatest.New(t)
	NewCreateBusinessHandler(allowCaller(7), mockSvc).Register(api)

	body := validBody()
	body.Name = ""

	resp := api.Post("/v1/businesses", "Authorization: Bearer token", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateBusiness_ServiceError(t *testing.T) {
	mockSvc := new(mockBusinessService)
	mockSvc.On("Create", mock.Anything, int64(7), mock.Anything).
		Return(nil, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewCreateBusinessHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Post("/v1/businesses", "Authorization: Bearer token", validBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBusiness_NotOwned(t *testing.T) {
	mockSvc := new(mockBusinessService)
	mockSvc.On("Get", mock.Anything, int64(7), int64(42)).Return(nil, service.ErrNotFound)

	_, api := humatest.New(t)
	NewGetBusinessHandler(allowCaller(7), mockSvc).Register(api)

	// Someone else's business looks exactly like a missing one.
	resp := api.Get("/v1/businesses/42", "Authorization: Bearer token")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetBusiness_Success(t *testing.T) {
	mockSvc := new(mockBusinessService)
	mockSvc.On("Get", mock.Anything, int64(7), int64(1)).
		Return(&service.Business{ID: 1, UserID: 7, Name: "Acme Traders"}, nil)

	_, api := humatest.New(t)
	NewGetBusinessHandler(allowCaller(7), mockSvc).Register(api)

	resp := api.Get("/v1/businesses/1", "Authorization: Bearer token")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Business
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Acme Traders", body.Name)
}
