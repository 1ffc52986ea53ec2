package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/passbook"
)

// PassbookService handles business logic for passbooks.
type PassbookService struct {
	storage *storage.Storage
}

// NewPassbookService creates a new PassbookService.
func NewPassbookService(store *storage.Storage) *PassbookService {
	return &PassbookService{storage: store}
}

// Create inserts a passbook under one of the owner's businesses. The business
// must exist and belong to userID, otherwise ErrNotFound.
func (s *PassbookService) Create(ctx context.Context, userID int64, businessID int64, create PassbookCreate) (*Passbook, error) {
	owner, err := s.storage.Businesses.FindByID(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}

	row, err := s.storage.Passbooks.Insert(ctx, &passbook.PassbookCreate{
		BusinessID:  businessID,
		UserID:      userID,
		Name:        create.Name,
		Description: create.Description,
	})
	if err != nil {
		return nil, err
	}
	return passbookFromStorage(row), nil
}

// List returns the owner's passbooks under the given business.
func (s *PassbookService) List(ctx context.Context, userID int64, businessID int64, filter PassbookListFilter) ([]Passbook, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Passbooks.List(ctx, &passbook.PassbookFilter{
		BusinessID: businessID,
		UserID:     userID,
		Skip:       filter.Skip,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]Passbook, len(rows))
	for i, row := range rows {
		result[i] = *passbookFromStorage(row)
	}
	return result, nil
}

// Get retrieves one of the owner's passbooks, or ErrNotFound.
func (s *PassbookService) Get(ctx context.Context, userID int64, businessID int64, id int64) (*Passbook, error) {
	row, err := s.storage.Passbooks.FindByID(ctx, id, userID, businessID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return passbookFromStorage(row), nil
}

// Update replaces all mutable fields of one of the owner's passbooks.
func (s *PassbookService) Update(ctx context.Context, userID int64, businessID int64, id int64, update PassbookUpdate) (*Passbook, error) {
	row, err := s.storage.Passbooks.Update(ctx, id, userID, businessID, &passbook.PassbookUpdate{
		Name:        update.Name,
		Description: update.Description,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return passbookFromStorage(row), nil
}

// Patch applies the set fields of the patch to one of the owner's passbooks.
func (s *PassbookService) Patch(ctx context.Context, userID int64, businessID int64, id int64, patch PassbookPatch) (*Passbook, error) {
	row, err := s.storage.Passbooks.Patch(ctx, id, userID, businessID, &passbook.PassbookPatch{
		Name:        omit.FromPtr(patch.Name),
		Description: omit.FromPtr(patch.Description),
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return passbookFromStorage(row), nil
}

// Delete removes one of the owner's passbooks and, through the schema cascade,
// every transaction in it.
func (s *PassbookService) Delete(ctx context.Context, userID int64, businessID int64, id int64) error {
	deleted, err := s.storage.Passbooks.Delete(ctx, id, userID, businessID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates across all passbooks.
func (s *PassbookService) Stats(ctx context.Context) (*PassbookStats, error) {
	stats, err := s.storage.Passbooks.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &PassbookStats{TotalPassbooks: stats.TotalPassbooks}, nil
}
