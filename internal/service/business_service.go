package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
)

const defaultListLimit = 10

// BusinessService handles business logic for businesses.
type BusinessService struct {
	storage *storage.Storage
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(store *storage.Storage) *BusinessService {
	return &BusinessService{storage: store}
}

// Create inserts a new business owned by userID and returns the persisted record.
func (s *BusinessService) Create(ctx context.Context, userID int64, create BusinessCreate) (*Business, error) {
	row, err := s.storage.Businesses.Insert(ctx, &business.BusinessCreate{
		UserID:      userID,
		Name:        create.Name,
		Description: create.Description,
		Industry:    create.Industry,
		FoundedYear: create.FoundedYear,
		Revenue:     create.Revenue,
		Employees:   create.Employees,
		Location:    create.Location,
	})
	if err != nil {
		return nil, err
	}
	return businessFromStorage(row), nil
}

// List returns the owner's businesses matching the filter.
func (s *BusinessService) List(ctx context.Context, userID int64, filter BusinessListFilter) ([]Business, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Businesses.List(ctx, &business.BusinessFilter{
		UserID:   userID,
		Industry: filter.Industry,
		Skip:     filter.Skip,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]Business, len(rows))
	for i, row := range rows {
		result[i] = *businessFromStorage(row)
	}
	return result, nil
}

// Get retrieves one of the owner's businesses, or ErrNotFound.
func (s *BusinessService) Get(ctx context.Context, userID int64, id int64) (*Business, error) {
	row, err := s.storage.Businesses.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return businessFromStorage(row), nil
}

// Update replaces all mutable fields of one of the owner's businesses.
func (s *BusinessService) Update(ctx context.Context, userID int64, id int64, update BusinessUpdate) (*Business, error) {
	row, err := s.storage.Businesses.Update(ctx, id, userID, &business.BusinessUpdate{
		Name:        update.Name,
		Description: update.Description,
		Industry:    update.Industry,
		FoundedYear: update.FoundedYear,
		Revenue:     update.Revenue,
		Employees:   update.Employees,
		Location:    update.Location,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return businessFromStorage(row), nil
}

// Patch applies the set fields of the patch to one of the owner's businesses.
func (s *BusinessService) Patch(ctx context.Context, userID int64, id int64, patch BusinessPatch) (*Business, error) {
	row, err := s.storage.Businesses.Patch(ctx, id, userID, &business.BusinessPatch{
		Name:        omit.FromPtr(patch.Name),
		Description: omit.FromPtr(patch.Description),
		Industry:    omit.FromPtr(patch.Industry),
		FoundedYear: omit.FromPtr(patch.FoundedYear),
		Revenue:     omit.FromPtr(patch.Revenue),
		Employees:   omit.FromPtr(patch.Employees),
		Location:    omit.FromPtr(patch.Location),
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return businessFromStorage(row), nil
}

// Delete removes one of the owner's businesses, or returns ErrNotFound.
func (s *BusinessService) Delete(ctx context.Context, userID int64, id int64) error {
	deleted, err := s.storage.Businesses.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates across all businesses.
func (s *BusinessService) Stats(ctx context.Context) (*BusinessStats, error) {
	stats, err := s.storage.Businesses.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &BusinessStats{
		TotalBusinesses: stats.TotalBusinesses,
		TotalEmployees:  stats.TotalEmployees,
		AverageRevenue:  stats.AverageRevenue,
		Industries:      stats.Industries,
	}, nil
}
