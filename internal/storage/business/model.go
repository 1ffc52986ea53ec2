package business

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

// Business represents a business record.
type Business struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Industry    string    `db:"industry"`
	FoundedYear int       `db:"founded_year"`
	Revenue     float64   `db:"revenue"`
	Employees   int       `db:"employees"`
	Location    string    `db:"location"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BusinessCreate is the input for creating a new business.
type BusinessCreate struct {
	UserID      int64
	Name        string
	Description *string
	Industry    string
	FoundedYear int
	Revenue     float64
	Employees   int
	Location    string
}

// BusinessUpdate replaces every mutable field of a business.
type BusinessUpdate struct {
	Name        string
	Description *string
	Industry    string
	FoundedYear int
	Revenue     float64
	Employees   int
	Location    string
}

// BusinessPatch applies only the fields that are set. Anything outside this
// allow-list is not representable and therefore ignored by construction.
type BusinessPatch struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Industry    omit.Val[string]
	FoundedYear omit.Val[int]
	Revenue     omit.Val[float64]
	Employees   omit.Val[int]
	Location    omit.Val[string]
}

// BusinessFilter specifies filters for listing businesses.
type BusinessFilter struct {
	UserID   int64
	Industry *string
	Skip     int
	Limit    int
}

// BusinessStats is the aggregate overview across all businesses.
type BusinessStats struct {
	TotalBusinesses int64
	TotalEmployees  int64
	AverageRevenue  float64
	Industries      []string
}

// IBusinessTable defines the interface for business storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IBusinessTable interface {
	Insert(ctx context.Context, create *BusinessCreate) (*Business, error)
	List(ctx context.Context, filter *BusinessFilter) ([]*Business, error)
	FindByID(ctx context.Context, id int64, userID int64) (*Business, error)
	Update(ctx context.Context, id int64, userID int64, update *BusinessUpdate) (*Business, error)
	Patch(ctx context.Context, id int64, userID int64, patch *BusinessPatch) (*Business, error)
	Delete(ctx context.Context, id int64, userID int64) (bool, error)
	Stats(ctx context.Context) (*BusinessStats, error)
}
