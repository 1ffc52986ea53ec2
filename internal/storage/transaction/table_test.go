package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/storage/passbook"
	"github.com/carson-networks/cashbook-server/internal/storage/storagetest"
)

func insertPassbook(t *testing.T, table *passbook.PassbooksTable, userID int64) *passbook.Passbook {
	t.Helper()
	row, err := table.Insert(context.Background(), &passbook.PassbookCreate{
		BusinessID: 1,
		UserID:     userID,
		Name:       "Daily Cash",
	})
	require.NoError(t, err)
	return row
}

func insertTxn(t *testing.T, table *TransactionsTable, passbookID int64, txnType string, amount string) *Transaction {
	t.Helper()
	row, err := table.Insert(context.Background(), &TransactionCreate{
		PassbookID: passbookID,
		TxnType:    txnType,
		Amount:     decimal.RequireFromString(amount),
		TxnDate:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return row
}

func TestTransactionsTable_InsertAndFind(t *testing.T) {
	db := storagetest.Open(t)
	passbooks := passbook.NewPassbooksTable(db)
	table := NewTransactionsTable(db)
	ctx := context.Background()

	pb := insertPassbook(t, passbooks, 7)
	created := insertTxn(t, table, pb.ID, "debit", "42.50")

	assert.NotZero(t, created.ID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("42.50")))

	found, err := table.FindByID(ctx, created.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "debit", found.TxnType)
}

func TestTransactionsTable_OwnershipThroughPassbook(t *testing.T) {
	db := storagetest.Open(t)
	passbooks := passbook.NewPassbooksTable(db)
	table := NewTransactionsTable(db)
	ctx := context.Background()

	pb := insertPassbook(t, passbooks, 7)
	created := insertTxn(t, table, pb.ID, "credit", "10.00")

	// User 8 owns no passbook containing this transaction.
	found, err := table.FindByID(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err := table.Delete(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = table.Delete(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestTransactionsTable_ConstraintsRejectBadRows(t *testing.T) {
	db := storagetest.Open(t)
	passbooks := passbook.NewPassbooksTable(db)
	table := NewTransactionsTable(db)
	ctx := context.Background()

	pb := insertPassbook(t, passbooks, 7)

	_, err := table.Insert(ctx, &TransactionCreate{
		PassbookID: pb.ID,
		TxnType:    "transfer",
		Amount:     decimal.RequireFromString("5.00"),
		TxnDate:    time.Now(),
	})
	assert.Error(t, err, "txn_type check rejects anything but debit or credit")

	_, err = table.Insert(ctx, &TransactionCreate{
		PassbookID: pb.ID,
		TxnType:    "debit",
		Amount:     decimal.RequireFromString("-5.00"),
		TxnDate:    time.Now(),
	})
	assert.Error(t, err, "amount check rejects non-positive amounts")
}

func TestTransactionsTable_CascadeOnPassbookDelete(t *testing.T) {
	db := storagetest.Open(t)
	passbooks := passbook.NewPassbooksTable(db)
	table := NewTransactionsTable(db)
	ctx := context.Background()

	pb := insertPassbook(t, passbooks, 7)
	insertTxn(t, table, pb.ID, "debit", "1.00")
	insertTxn(t, table, pb.ID, "credit", "2.00")

	deleted, err := passbooks.Delete(ctx, pb.ID, 7, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	stats, err := table.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTransactions, "transactions go with their passbook")
}

func TestTransactionsTable_ListFilterAndPaging(t *testing.T) {
	db := storagetest.Open(t)
	passbooks := passbook.NewPassbooksTable(db)
	table := NewTransactionsTable(db)
	ctx := context.Background()

	pb1 := insertPassbook(t, passbooks, 7)
	pb2 := insertPassbook(t, passbooks, 7)
	insertTxn(t, table, pb1.ID, "debit", "1.00")
	insertTxn(t, table, pb1.ID, "credit", "2.00")
	insertTxn(t, table, pb2.ID, "debit", "3.00")

	all, err := table.List(ctx, &TransactionFilter{UserID: 7, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := table.List(ctx, &TransactionFilter{UserID: 7, PassbookID: &pb1.ID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, scoped, 2)

	page, err := table.List(ctx, &TransactionFilter{UserID: 7, Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
