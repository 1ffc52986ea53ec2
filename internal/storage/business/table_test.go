package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/storage/storagetest"
)

func strPtr(s string) *string { return &s }

func insertSample(t *testing.T, table *BusinessesTable, userID int64, name string, industry string) *Business {
	t.Helper()
	row, err := table.Insert(context.Background(), &BusinessCreate{
		UserID:      userID,
		Name:        name,
		Description: strPtr("test business"),
		Industry:    industry,
		FoundedYear: 1998,
		Revenue:     120000,
		Employees:   14,
		Location:    "Pune",
	})
	require.NoError(t, err)
	require.NotNil(t, row)
	return row
}

func TestBusinessesTable_InsertAndFind(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, "Acme Traders", "Retail")
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(7), created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := table.FindByID(ctx, created.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme Traders", found.Name)
	assert.Equal(t, 1998, found.FoundedYear)
}

func TestBusinessesTable_FindByID_WrongOwner(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, "Acme Traders", "Retail")

	found, err := table.FindByID(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBusinessesTable_List_ScopedAndFiltered(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	insertSample(t, table, 7, "Acme Traders", "Retail")
	insertSample(t, table, 7, "Bright Farms", "Agriculture")
	insertSample(t, table, 8, "Other Co", "Retail")

	mine, err := table.List(ctx, &BusinessFilter{UserID: 7, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	industry := "retail" // matched case-insensitively
	retail, err := table.List(ctx, &BusinessFilter{UserID: 7, Industry: &industry, Limit: 10})
	require.NoError(t, err)
	require.Len(t, retail, 1)
	assert.Equal(t, "Acme Traders", retail[0].Name)
}

func TestBusinessesTable_Patch_PartialAndNoop(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, "Acme Traders", "Retail")

	patch := &BusinessPatch{}
	patch.Name.Set("Acme Holdings")
	patched, err := table.Patch(ctx, created.ID, 7, patch)
	require.NoError(t, err)
	require.NotNil(t, patched)
	assert.Equal(t, "Acme Holdings", patched.Name)
	assert.Equal(t, "Retail", patched.Industry, "untouched field survives")

	// An empty patch behaves like a read.
	unchanged, err := table.Patch(ctx, created.ID, 7, &BusinessPatch{})
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "Acme Holdings", unchanged.Name)
}

func TestBusinessesTable_Delete(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, "Acme Traders", "Retail")

	deleted, err := table.Delete(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.False(t, deleted, "wrong owner cannot delete")

	deleted, err = table.Delete(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := table.FindByID(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBusinessesTable_Stats(t *testing.T) {
	db := storagetest.Open(t)
	table := NewBusinessesTable(db)
	ctx := context.Background()

	empty, err := table.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalBusinesses)
	assert.Zero(t, empty.TotalEmployees)
	assert.Zero(t, empty.AverageRevenue)
	assert.NotNil(t, empty.Industries)
	assert.Empty(t, empty.Industries)

	insertSample(t, table, 7, "Acme Traders", "Retail")
	insertSample(t, table, 8, "Bright Farms", "Agriculture")

	stats, err := table.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBusinesses)
	assert.Equal(t, int64(28), stats.TotalEmployees)
	assert.InDelta(t, 120000, stats.AverageRevenue, 0.01)
	assert.Equal(t, []string{"Agriculture", "Retail"}, stats.Industries)
}
