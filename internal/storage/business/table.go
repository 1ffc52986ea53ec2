package business

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

var _ IBusinessTable = (*BusinessesTable)(nil)

type BusinessesTable struct {
	exec bob.Executor
}

func NewBusinessesTable(db *sql.DB) *BusinessesTable {
	return &BusinessesTable{exec: bob.NewDB(db)}
}

// Insert creates a new business and returns the persisted row.
func (t *BusinessesTable) Insert(ctx context.Context, create *BusinessCreate) (*Business, error) {
	q := psql.Insert(
		im.Into("businesses",
			"user_id", "name", "description", "industry",
			"founded_year", "revenue", "employees", "location"),
		im.Values(psql.Arg(
			create.UserID, create.Name, create.Description, create.Industry,
			create.FoundedYear, create.Revenue, create.Employees, create.Location)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns businesses owned by the filter's user, page-limited, with an
// optional case-insensitive industry filter.
func (t *BusinessesTable) List(ctx context.Context, filter *BusinessFilter) ([]*Business, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From("businesses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Industry != nil {
		queryMods = append(queryMods, sm.Where(psql.Raw("lower(industry) = lower(?)", *filter.Industry)))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Skip > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Skip))
	}
	queryMods = append(queryMods, sm.OrderBy("id"))

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Business]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a business by primary key, scoped to its owner.
// Absent or not owned both come back as nil, nil.
func (t *BusinessesTable) FindByID(ctx context.Context, id int64, userID int64) (*Business, error) {
	q := psql.Select(
		sm.From("businesses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces all mutable fields and returns the updated row, or nil, nil
// when the business does not exist or belongs to another user.
func (t *BusinessesTable) Update(ctx context.Context, id int64, userID int64, update *BusinessUpdate) (*Business, error) {
	q := psql.Update(
		um.Table("businesses"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("industry").ToArg(update.Industry),
		um.SetCol("founded_year").ToArg(update.FoundedYear),
		um.SetCol("revenue").ToArg(update.Revenue),
		um.SetCol("employees").ToArg(update.Employees),
		um.SetCol("location").ToArg(update.Location),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Patch applies only the fields set on the patch. With nothing set it reduces
// to a lookup so the caller still gets the current row back.
func (t *BusinessesTable) Patch(ctx context.Context, id int64, userID int64, patch *BusinessPatch) (*Business, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table("businesses")}
	if patch.Name.IsValue() {
		queryMods = append(queryMods, um.SetCol("name").ToArg(patch.Name.GetOrZero()))
	}
	if patch.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(patch.Description.GetOrZero()))
	}
	if patch.Industry.IsValue() {
		queryMods = append(queryMods, um.SetCol("industry").ToArg(patch.Industry.GetOrZero()))
	}
	if patch.FoundedYear.IsValue() {
		queryMods = append(queryMods, um.SetCol("founded_year").ToArg(patch.FoundedYear.GetOrZero()))
	}
	if patch.Revenue.IsValue() {
		queryMods = append(queryMods, um.SetCol("revenue").ToArg(patch.Revenue.GetOrZero()))
	}
	if patch.Employees.IsValue() {
		queryMods = append(queryMods, um.SetCol("employees").ToArg(patch.Employees.GetOrZero()))
	}
	if patch.Location.IsValue() {
		queryMods = append(queryMods, um.SetCol("location").ToArg(patch.Location.GetOrZero()))
	}

	if len(queryMods) == 1 {
		return t.FindByID(ctx, id, userID)
	}

	queryMods = append(queryMods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Business]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a business. Returns false when nothing matched.
func (t *BusinessesTable) Delete(ctx context.Context, id int64, userID int64) (bool, error) {
	q := psql.Delete(
		dm.From("businesses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
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

type businessAggregates struct {
	TotalBusinesses int64   `db:"total_businesses"`
	TotalEmployees  int64   `db:"total_employees"`
	AverageRevenue  float64 `db:"average_revenue"`
}

// Stats aggregates across all businesses. COALESCE keeps the empty-table case
// at zero instead of surfacing SQL NULLs.
func (t *BusinessesTable) Stats(ctx context.Context) (*BusinessStats, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("count(*) AS total_businesses"),
			psql.Raw("coalesce(sum(employees), 0) AS total_employees"),
			psql.Raw("coalesce(avg(revenue), 0) AS average_revenue"),
		),
		sm.From("businesses"),
	)

	aggregates, err := bob.One(ctx, t.exec, q, scan.StructMapper[businessAggregates]())
	if err != nil {
		return nil, err
	}

	stats := &BusinessStats{
		TotalBusinesses: aggregates.TotalBusinesses,
		TotalEmployees:  aggregates.TotalEmployees,
		AverageRevenue:  aggregates.AverageRevenue,
		Industries:      []string{},
	}
	if stats.TotalBusinesses == 0 {
		return stats, nil
	}

	industriesQuery := psql.Select(
		sm.Columns("industry"),
		sm.Distinct(),
		sm.From("businesses"),
		sm.OrderBy("industry"),
	)
	industries, err := bob.All(ctx, t.exec, industriesQuery, scan.SingleColumnMapper[string])
	if err != nil {
		return nil, err
	}
	stats.Industries = industries

	return stats, nil
}
