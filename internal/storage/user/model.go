package user

import (
	"context"
	"time"
)

// User represents a user record. Password holds the bcrypt hash, never the
// plaintext; it stays inside the storage and service layers.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Photo     *string   `db:"photo"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserCreate is the input for creating a new user. Password must already be
// hashed by the caller.
type UserCreate struct {
	Name     string
	Username string
	Password string
	Email    string
	Phone    *string
	Photo    *string
}

// UserUpdate replaces the mutable profile fields. Username and password are
// not updatable through this path.
type UserUpdate struct {
	Name  string
	Email string
	Phone *string
	Photo *string
}

// UserFilter specifies pagination for listing users.
type UserFilter struct {
	Skip  int
	Limit int
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	List(ctx context.Context, filter *UserFilter) ([]*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, id int64, update *UserUpdate) (*User, error)
}
