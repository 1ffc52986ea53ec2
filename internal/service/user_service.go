package service

import (
	"context"
	"strings"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// UserService handles accounts, credentials, and bearer token resolution.
type UserService struct {
	storage *storage.Storage
	tokens  *auth.TokenManager
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, tokens *auth.TokenManager) *UserService {
	return &UserService{storage: store, tokens: tokens}
}

// Register creates an account and returns a bearer token for it. A duplicate
// username comes back as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, register UserRegister) (*AuthResult, error) {
	existing, err := s.storage.Users.FindByUsername(ctx, register.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(register.Password)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Users.Insert(ctx, &user.UserCreate{
		Name:     register.Name,
		Username: register.Username,
		Password: hash,
		Email:    register.Email,
		Phone:    register.Phone,
		Photo:    register.Photo,
	})
	if err != nil {
		// A concurrent register can slip past the lookup above and land
		// on the unique index instead.
		if user.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(row.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: *userFromStorage(row)}, nil
}

// Login verifies a username and password pair and returns a bearer token.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username string, password string) (*AuthResult, error) {
	row, err := s.storage.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, row.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(row.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: *userFromStorage(row)}, nil
}

// Authenticate resolves an Authorization header into the user it identifies.
// Anything short of a valid bearer token for an existing user comes back as
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, authorization string) (*User, error) {
	tokenString, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || tokenString == "" {
		return nil, ErrInvalidCredentials
	}

	username, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	row, err := s.storage.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}

	return userFromStorage(row), nil
}

// List returns users, page-limited.
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]User, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Users.List(ctx, &user.UserFilter{
		Skip:  filter.Skip,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]User, len(rows))
	for i, row := range rows {
		result[i] = *userFromStorage(row)
	}
	return result, nil
}

// Get retrieves a user by ID, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return userFromStorage(row), nil
}

// Update replaces the mutable profile fields of a user.
func (s *UserService) Update(ctx context.Context, id int64, update UserUpdate) (*User, error) {
	row, err := s.storage.Users.Update(ctx, id, &user.UserUpdate{
		Name:  update.Name,
		Email: update.Email,
		Phone: update.Phone,
		Photo: update.Photo,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return userFromStorage(row), nil
}
