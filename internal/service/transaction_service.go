package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

// TransactionService handles business logic for transactions.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Create inserts a transaction into one of the owner's passbooks. The passbook
// must exist and belong to userID, otherwise ErrNotFound.
func (s *TransactionService) Create(ctx context.Context, userID int64, create TransactionCreate) (*Transaction, error) {
	owner, err := s.storage.Passbooks.FindByIDForUser(ctx, create.PassbookID, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}

	txnDate := create.TxnDate
	if txnDate.IsZero() {
		txnDate = time.Now().UTC()
	}

	row, err := s.storage.Transactions.Insert(ctx, &transaction.TransactionCreate{
		PassbookID:  create.PassbookID,
		TxnType:     create.TxnType,
		Amount:      create.Amount,
		Description: create.Description,
		TxnDate:     txnDate,
		ReferenceNo: create.ReferenceNo,
	})
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// List returns transactions across the owner's passbooks, optionally narrowed
// to a single passbook.
func (s *TransactionService) List(ctx context.Context, userID int64, filter TransactionListFilter) ([]Transaction, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID:     userID,
		PassbookID: filter.PassbookID,
		Skip:       filter.Skip,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]Transaction, len(rows))
	for i, row := range rows {
		result[i] = *transactionFromStorage(row)
	}
	return result, nil
}

// Get retrieves a transaction from one of the owner's passbooks, or ErrNotFound.
func (s *TransactionService) Get(ctx context.Context, userID int64, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return transactionFromStorage(row), nil
}

// Update replaces the value fields of a transaction in one of the owner's
// passbooks.
func (s *TransactionService) Update(ctx context.Context, userID int64, id int64, update TransactionUpdate) (*Transaction, error) {
	row, err := s.storage.Transactions.Update(ctx, id, userID, &transaction.TransactionUpdate{
		TxnType:     update.TxnType,
		Amount:      update.Amount,
		Description: update.Description,
		TxnDate:     update.TxnDate,
		ReferenceNo: update.ReferenceNo,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return transactionFromStorage(row), nil
}

// Patch applies the set fields of the patch to a transaction in one of the
// owner's passbooks.
func (s *TransactionService) Patch(ctx context.Context, userID int64, id int64, patch TransactionPatch) (*Transaction, error) {
	row, err := s.storage.Transactions.Patch(ctx, id, userID, &transaction.TransactionPatch{
		Description: omit.FromPtr(patch.Description),
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return transactionFromStorage(row), nil
}

// Delete removes a transaction from one of the owner's passbooks.
func (s *TransactionService) Delete(ctx context.Context, userID int64, id int64) error {
	deleted, err := s.storage.Transactions.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates across all transactions.
func (s *TransactionService) Stats(ctx context.Context) (*TransactionStats, error) {
	stats, err := s.storage.Transactions.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &TransactionStats{TotalTransactions: stats.TotalTransactions}, nil
}
