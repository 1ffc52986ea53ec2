package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(db *sql.DB) *UsersTable {
	return &UsersTable{exec: bob.NewDB(db)}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, which on this table can only mean a duplicate username.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Insert creates a new user and returns the persisted row. A duplicate
// username surfaces as a unique violation from the driver.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "name", "username", "password", "email", "phone", "photo"),
		im.Values(psql.Arg(
			create.Name, create.Username, create.Password,
			create.Email, create.Phone, create.Photo)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns users, page-limited. No ownership applies.
func (t *UsersTable) List(ctx context.Context, filter *UserFilter) ([]*User, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From("users"),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Skip > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Skip))
	}
	queryMods = append(queryMods, sm.OrderBy("id"))

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*User]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a user by primary key. Absent comes back as nil, nil.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	q := psql.Select(
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByUsername retrieves a user by unique username.
func (t *UsersTable) FindByUsername(ctx context.Context, username string) (*User, error) {
	q := psql.Select(
		sm.From("users"),
		sm.Where(psql.Quote("username").EQ(psql.Arg(username))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the mutable profile fields and returns the updated row.
func (t *UsersTable) Update(ctx context.Context, id int64, update *UserUpdate) (*User, error) {
	q := psql.Update(
		um.Table("users"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("email").ToArg(update.Email),
		um.SetCol("phone").ToArg(update.Phone),
		um.SetCol("photo").ToArg(update.Photo),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
