package passbook

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

// Passbook represents a passbook record: one ledger scoped to a business and
// an owning user. Both foreign keys are fixed at creation time.
type Passbook struct {
	ID          int64     `db:"id"`
	BusinessID  int64     `db:"business_id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PassbookCreate is the input for creating a new passbook.
type PassbookCreate struct {
	BusinessID  int64
	UserID      int64
	Name        string
	Description *string
}

// PassbookUpdate replaces the mutable fields of a passbook.
type PassbookUpdate struct {
	Name        string
	Description *string
}

// PassbookPatch applies only the fields that are set.
type PassbookPatch struct {
	Name        omit.Val[string]
	Description omit.Val[string]
}

// PassbookFilter specifies filters for listing passbooks.
type PassbookFilter struct {
	BusinessID int64
	UserID     int64
	Skip       int
	Limit      int
}

// PassbookStats is the aggregate overview across all passbooks.
type PassbookStats struct {
	TotalPassbooks int64
}

// IPassbookTable defines the interface for passbook storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IPassbookTable interface {
	Insert(ctx context.Context, create *PassbookCreate) (*Passbook, error)
	List(ctx context.Context, filter *PassbookFilter) ([]*Passbook, error)
	FindByID(ctx context.Context, id int64, userID int64, businessID int64) (*Passbook, error)
	FindByIDForUser(ctx context.Context, id int64, userID int64) (*Passbook, error)
	Update(ctx context.Context, id int64, userID int64, businessID int64, update *PassbookUpdate) (*Passbook, error)
	Patch(ctx context.Context, id int64, userID int64, businessID int64, patch *PassbookPatch) (*Passbook, error)
	Delete(ctx context.Context, id int64, userID int64, businessID int64) (bool, error)
	Stats(ctx context.Context) (*PassbookStats, error)
}
