package service

import (
	"time"

	"github.com/carson-networks/cashbook-server/internal/storage/passbook"
)

// Passbook represents a passbook in the service layer.
type Passbook struct {
	ID          int64
	BusinessID  int64
	UserID      int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PassbookCreate carries the fields for creating a passbook.
type PassbookCreate struct {
	Name        string
	Description *string
}

// PassbookUpdate replaces every mutable field.
type PassbookUpdate struct {
	Name        string
	Description *string
}

// PassbookPatch carries optional fields; nil means "leave unchanged".
type PassbookPatch struct {
	Name        *string
	Description *string
}

// PassbookListFilter specifies listing parameters.
type PassbookListFilter struct {
	Skip  int
	Limit int
}

// PassbookStats is the aggregate overview across all passbooks.
type PassbookStats struct {
	TotalPassbooks int64
}

func passbookFromStorage(row *passbook.Passbook) *Passbook {
	return &Passbook{
		ID:          row.ID,
		BusinessID:  row.BusinessID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
