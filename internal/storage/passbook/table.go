package passbook

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

var _ IPassbookTable = (*PassbooksTable)(nil)

type PassbooksTable struct {
	exec bob.Executor
}

func NewPassbooksTable(db *sql.DB) *PassbooksTable {
	return &PassbooksTable{exec: bob.NewDB(db)}
}

// Insert creates a new passbook and returns the persisted row.
func (t *PassbooksTable) Insert(ctx context.Context, create *PassbookCreate) (*Passbook, error) {
	q := psql.Insert(
		im.Into("passbook", "business_id", "user_id", "name", "description"),
		im.Values(psql.Arg(create.BusinessID, create.UserID, create.Name, create.Description)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Passbook]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the owner's passbooks under one business, page-limited.
func (t *PassbooksTable) List(ctx context.Context, filter *PassbookFilter) ([]*Passbook, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From("passbook"),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(filter.BusinessID))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Skip > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Skip))
	}
	queryMods = append(queryMods, sm.OrderBy("id"))

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Passbook]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a passbook scoped to its owner and parent business.
func (t *PassbooksTable) FindByID(ctx context.Context, id int64, userID int64, businessID int64) (*Passbook, error) {
	q := psql.Select(
		sm.From("passbook"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Passbook]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDForUser retrieves a passbook by id and owner only, without the
// business scope. Used to check ownership before touching transactions.
func (t *PassbooksTable) FindByIDForUser(ctx context.Context, id int64, userID int64) (*Passbook, error) {
	q := psql.Select(
		sm.From("passbook"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Passbook]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the mutable fields. business_id and user_id stay untouched.
func (t *PassbooksTable) Update(ctx context.Context, id int64, userID int64, businessID int64, update *PassbookUpdate) (*Passbook, error) {
	q := psql.Update(
		um.Table("passbook"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Passbook]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Patch applies only the fields set on the patch.
func (t *PassbooksTable) Patch(ctx context.Context, id int64, userID int64, businessID int64, patch *PassbookPatch) (*Passbook, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table("passbook")}
	if patch.Name.IsValue() {
		queryMods = append(queryMods, um.SetCol("name").ToArg(patch.Name.GetOrZero()))
	}
	if patch.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(patch.Description.GetOrZero()))
	}

	if len(queryMods) == 1 {
		return t.FindByID(ctx, id, userID, businessID)
	}

	queryMods = append(queryMods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Passbook]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a passbook; its transactions go with it via the cascade.
func (t *PassbooksTable) Delete(ctx context.Context, id int64, userID int64, businessID int64) (bool, error) {
	q := psql.Delete(
		dm.From("passbook"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
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

type passbookAggregates struct {
	TotalPassbooks int64 `db:"total_passbooks"`
}

// Stats counts all passbooks.
func (t *PassbooksTable) Stats(ctx context.Context) (*PassbookStats, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*) AS total_passbooks")),
		sm.From("passbook"),
	)

	aggregates, err := bob.One(ctx, t.exec, q, scan.StructMapper[passbookAggregates]())
	if err != nil {
		return nil, err
	}
	return &PassbookStats{TotalPassbooks: aggregates.TotalPassbooks}, nil
}
