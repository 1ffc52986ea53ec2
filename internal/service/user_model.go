package service

import (
	"time"

	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// User represents a user in the service layer. It deliberately has no
// password field so that hashes cannot leak into responses.
type User struct {
	ID        int64
	Name      string
	Username  string
	Email     string
	Phone     *string
	Photo     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRegister carries the fields for creating a new account.
type UserRegister struct {
	Name     string
	Username string
	Password string
	Email    string
	Phone    *string
	Photo    *string
}

// UserUpdate replaces the mutable profile fields.
type UserUpdate struct {
	Name  string
	Email string
	Phone *string
	Photo *string
}

// UserListFilter specifies pagination for listing users.
type UserListFilter struct {
	Skip  int
	Limit int
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token string
	User  User
}

func userFromStorage(row *user.User) *User {
	return &User{
		ID:        row.ID,
		Name:      row.Name,
		Username:  row.Username,
		Email:     row.Email,
		Phone:     row.Phone,
		Photo:     row.Photo,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
