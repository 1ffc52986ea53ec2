package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
)

// mockBusinessTable is a hand-rolled mock for business.IBusinessTable.
type mockBusinessTable struct {
	mock.Mock
}

func (m *mockBusinessTable) Insert(ctx context.Context, create *business.BusinessCreate) (*business.Business, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessTable) List(ctx context.Context, filter *business.BusinessFilter) ([]*business.Business, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*business.Business), args.Error(1)
}

func (m *mockBusinessTable) FindByID(ctx context.Context, id int64, userID int64) (*business.Business, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessTable) Update(ctx context.Context, id int64, userID int64, update *business.BusinessUpdate) (*business.Business, error) {
	args := m.Called(ctx, id, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessTable) Patch(ctx context.Context, id int64, userID int64, patch *business.BusinessPatch) (*business.Business, error) {
	args := m.Called(ctx, id, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessTable) Delete(ctx context.Context, id int64, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBusinessTable) Stats(ctx context.Context) (*business.BusinessStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.BusinessStats), args.Error(1)
}

func newBusinessTestService() (*BusinessService, *mockBusinessTable) {
	mockTable := new(mockBusinessTable)
	store := &storage.Storage{Businesses: mockTable}
	return NewBusinessService(store), mockTable
}

func sampleBusinessRow(id int64, userID int64) *business.Business {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &business.Business{
		ID:          id,
		UserID:      userID,
		Name:        "Acme Traders",
		Industry:    "Retail",
		FoundedYear: 1998,
		Revenue:     120000,
		Employees:   14,
		Location:    "Pune",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBusinessCreate_Success(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("Insert", mock.Anything, mock.MatchedBy(func(c *business.BusinessCreate) bool {
		return c.UserID == 7 && c.Name == "Acme Traders" && c.FoundedYear == 1998
	})).Return(sampleBusinessRow(1, 7), nil)

	created, err := svc.Create(context.Background(), 7, BusinessCreate{
		Name:        "Acme Traders",
		Industry:    "Retail",
		FoundedYear: 1998,
		Revenue:     120000,
		Employees:   14,
		Location:    "Pune",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), created.UserID)
	mockTable.AssertExpectations(t)
}

func TestBusinessCreate_StorageError(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("Insert", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	created, err := svc.Create(context.Background(), 7, BusinessCreate{Name: "X"})

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestBusinessList_DefaultLimit(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *business.BusinessFilter) bool {
		return f.UserID == 7 && f.Limit == defaultListLimit && f.Industry == nil
	})).Return([]*business.Business{sampleBusinessRow(1, 7), sampleBusinessRow(2, 7)}, nil)

	businesses, err := svc.List(context.Background(), 7, BusinessListFilter{})

	assert.NoError(t, err)
	assert.Len(t, businesses, 2)
	assert.Equal(t, int64(1), businesses[0].ID)
	mockTable.AssertExpectations(t)
}

func TestBusinessList_IndustryFilter(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	industry := "Retail"
	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *business.BusinessFilter) bool {
		return f.Industry != nil && *f.Industry == industry && f.Skip == 20 && f.Limit == 5
	})).Return([]*business.Business{}, nil)

	businesses, err := svc.List(context.Background(), 7, BusinessListFilter{
		Industry: &industry,
		Skip:     20,
		Limit:    5,
	})

	assert.NoError(t, err)
	assert.Empty(t, businesses)
	mockTable.AssertExpectations(t)
}

func TestBusinessGet_NotFound(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("FindByID", mock.Anything, int64(99), int64(7)).Return(nil, nil)

	found, err := svc.Get(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, found)
}

func TestBusinessGet_Success(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("FindByID", mock.Anything, int64(1), int64(7)).Return(sampleBusinessRow(1, 7), nil)

	found, err := svc.Get(context.Background(), 7, 1)

	assert.NoError(t, err)
	assert.Equal(t, "Acme Traders", found.Name)
}

func TestBusinessUpdate_NotOwned(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	// The table scopes by user ID, so someone else's business comes back nil.
	mockTable.On("Update", mock.Anything, int64(1), int64(8), mock.Anything).Return(nil, nil)

	updated, err := svc.Update(context.Background(), 8, 1, BusinessUpdate{Name: "Hijack"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, updated)
}

func TestBusinessPatch_SetsOnlyProvidedFields(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	name := "Acme Holdings"
	mockTable.On("Patch", mock.Anything, int64(1), int64(7), mock.MatchedBy(func(p *business.BusinessPatch) bool {
		return p.Name.IsValue() && p.Name.GetOrZero() == name &&
			!p.Industry.IsValue() && !p.Revenue.IsValue()
	})).Return(sampleBusinessRow(1, 7), nil)

	patched, err := svc.Patch(context.Background(), 7, 1, BusinessPatch{Name: &name})

	assert.NoError(t, err)
	assert.NotNil(t, patched)
	mockTable.AssertExpectations(t)
}

func TestBusinessDelete_NotFound(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("Delete", mock.Anything, int64(99), int64(7)).Return(false, nil)

	err := svc.Delete(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessDelete_Success(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("Delete", mock.Anything, int64(1), int64(7)).Return(true, nil)

	err := svc.Delete(context.Background(), 7, 1)

	assert.NoError(t, err)
}

func TestBusinessStats_Empty(t *testing.T) {
	svc, mockTable := newBusinessTestService()

	mockTable.On("Stats", mock.Anything).Return(&business.BusinessStats{
		Industries: []string{},
	}, nil)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, stats.TotalBusinesses)
	assert.Zero(t, stats.AverageRevenue)
	assert.NotNil(t, stats.Industries)
	assert.Empty(t, stats.Industries)
}
