package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// ownedPassbookClause restricts transaction rows to passbooks owned by the
// given user. Rows under someone else's passbook are indistinguishable from
// absent ones.
const ownedPassbookClause = "passbook_id IN (SELECT id FROM passbook WHERE user_id = ?)"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns the persisted row. Ownership
// of the target passbook is the caller's responsibility to check; a zero
// TxnDate should be defaulted by the caller before it gets here.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transaction",
			"passbook_id", "txn_type", "amount", "description", "txn_date", "reference_no"),
		im.Values(psql.Arg(
			create.PassbookID, create.TxnType, create.Amount,
			create.Description, create.TxnDate, create.ReferenceNo)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the owner's transactions, optionally restricted to one
// passbook, page-limited.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From("transaction"),
		sm.Where(psql.Raw(ownedPassbookClause, filter.UserID)),
	}
	if filter.PassbookID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("passbook_id").EQ(psql.Arg(*filter.PassbookID))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Skip > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Skip))
	}
	queryMods = append(queryMods, sm.OrderBy("id"))

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a transaction by primary key, scoped through passbook
// ownership. Absent or not owned both come back as nil, nil.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64, userID int64) (*Transaction, error) {
	q := psql.Select(
		sm.From("transaction"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Raw(ownedPassbookClause, userID)),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the mutable value fields of a transaction.
func (t *TransactionsTable) Update(ctx context.Context, id int64, userID int64, update *TransactionUpdate) (*Transaction, error) {
	q := psql.Update(
		um.Table("transaction"),
		um.SetCol("txn_type").ToArg(update.TxnType),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("txn_date").ToArg(update.TxnDate),
		um.SetCol("reference_no").ToArg(update.ReferenceNo),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Raw(ownedPassbookClause, userID)),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Patch applies only the fields set on the patch; the allow-list for
// transactions is description alone.
func (t *TransactionsTable) Patch(ctx context.Context, id int64, userID int64, patch *TransactionPatch) (*Transaction, error) {
	if !patch.Description.IsValue() {
		return t.FindByID(ctx, id, userID)
	}

	q := psql.Update(
		um.Table("transaction"),
		um.SetCol("description").ToArg(patch.Description.GetOrZero()),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Raw(ownedPassbookClause, userID)),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a transaction. Returns false when nothing matched.
func (t *TransactionsTable) Delete(ctx context.Context, id int64, userID int64) (bool, error) {
	q := psql.Delete(
		dm.From("transaction"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Raw(ownedPassbookClause, userID)),
	)

	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type transactionAggregates struct {
	TotalTransactions int64 `db:"total_transactions"`
}

// Stats counts all transactions.
func (t *TransactionsTable) Stats(ctx context.Context) (*TransactionStats, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*) AS total_transactions")),
		sm.From("transaction"),
	)

	aggregates, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionAggregates]())
	if err != nil {
		return nil, err
	}
	return &TransactionStats{TotalTransactions: aggregates.TotalTransactions}, nil
}
