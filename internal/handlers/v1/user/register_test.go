package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// mockUserService is a mock for the user service interfaces.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, register service.UserRegister) (*service.AuthResult, error) {
	args := m.Called(ctx, register)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, username string, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func sampleAuthResult() *service.AuthResult {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &service.AuthResult{
		Token: "signed.jwt.token",
		User: service.User{
			ID:        1,
			Name:      "Asha",
			Username:  "asha",
			Email:     "asha@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestHTTP_Register_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(r service.UserRegister) bool {
		return r.Username == "asha" && r.Password == "hunter22"
	})).Return(sampleAuthResult(), nil)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/register", RegisterBody{
		Name:     "Asha",
		Username: "asha",
		Password: "hunter22",
		Email:    "asha@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RegisterResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Register_NoPasswordInResponse(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, mock.Anything).Return(sampleAuthResult(), nil)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/register", RegisterBody{
		Name:     "Asha",
		Username: "asha",
		Password: "hunter22",
		Email:    "asha@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var raw map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "user")
}

func TestHTTP_Register_UsernameTaken(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, mock.Anything).
		Return(nil, service.ErrUsernameTaken)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/register", RegisterBody{
		Name:     "Asha",
		Username: "asha",
		Password: "hunter22",
		Email:    "asha@example.com",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Register_ShortPassword(t *testing.T) {
	mockSvc := new(mockUserService)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/register", RegisterBody{
		Name:     "Asha",
		Username: "asha",
		Password: "abc",
		Email:    "asha@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, "asha", "hunter22").Return(sampleAuthResult(), nil)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/login", LoginBody{Username: "asha", Password: "hunter22"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, "asha", "wrong").
		Return(nil, service.ErrInvalidCredentials)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/login", LoginBody{Username: "asha", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Login_MissingFields(t *testing.T) {
	mockSvc := new(mockUserService)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/login", map[string]any{"username": "asha"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Login")
}
