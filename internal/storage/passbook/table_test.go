package passbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/storage/storagetest"
)

func insertSample(t *testing.T, table *PassbooksTable, userID int64, businessID int64, name string) *Passbook {
	t.Helper()
	row, err := table.Insert(context.Background(), &PassbookCreate{
		BusinessID: businessID,
		UserID:     userID,
		Name:       name,
	})
	require.NoError(t, err)
	return row
}

func TestPassbooksTable_InsertAndFind(t *testing.T) {
	db := storagetest.Open(t)
	table := NewPassbooksTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, 1, "Daily Cash")
	assert.NotZero(t, created.ID)

	found, err := table.FindByID(ctx, created.ID, 7, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Daily Cash", found.Name)

	// Wrong owner and wrong business both read as absent.
	missing, err := table.FindByID(ctx, created.ID, 8, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = table.FindByID(ctx, created.ID, 7, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPassbooksTable_FindByIDForUser(t *testing.T) {
	db := storagetest.Open(t)
	table := NewPassbooksTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, 1, "Daily Cash")

	found, err := table.FindByIDForUser(ctx, created.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := table.FindByIDForUser(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPassbooksTable_ListScopedToBusiness(t *testing.T) {
	db := storagetest.Open(t)
	table := NewPassbooksTable(db)
	ctx := context.Background()

	insertSample(t, table, 7, 1, "Daily Cash")
	insertSample(t, table, 7, 1, "Savings")
	insertSample(t, table, 7, 2, "Other Business")
	insertSample(t, table, 8, 1, "Not Mine")

	rows, err := table.List(ctx, &PassbookFilter{UserID: 7, BusinessID: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestPassbooksTable_PatchAllowList(t *testing.T) {
	db := storagetest.Open(t)
	table := NewPassbooksTable(db)
	ctx := context.Background()

	created := insertSample(t, table, 7, 1, "Daily Cash")

	patch := &PassbookPatch{}
	patch.Description.Set("petty cash drawer")
	patched, err := table.Patch(ctx, created.ID, 7, 1, patch)
	require.NoError(t, err)
	require.NotNil(t, patched)
	assert.Equal(t, "Daily Cash", patched.Name, "untouched field survives")
	require.NotNil(t, patched.Description)
	assert.Equal(t, "petty cash drawer", *patched.Description)

	// An empty patch behaves like a read.
	unchanged, err := table.Patch(ctx, created.ID, 7, 1, &PassbookPatch{})
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "Daily Cash", unchanged.Name)
}

func TestPassbooksTable_DeleteAndStats(t *testing.T) {
	db := storagetest.Open(t)
	table := NewPassbooksTable(db)
	ctx := context.Background()

	empty, err := table.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPassbooks)

	created := insertSample(t, table, 7, 1, "Daily Cash")

	stats, err := table.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalPassbooks)

	deleted, err := table.Delete(ctx, created.ID, 8, 1)
	require.NoError(t, err)
	assert.False(t, deleted, "wrong owner cannot delete")

	deleted, err = table.Delete(ctx, created.ID, 7, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}
