package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/passbook"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// Storage bundles one database handle with a table per entity. The fields are
// interfaces so tests can swap in doubles.
type Storage struct {
	DB           *sql.DB
	Businesses   business.IBusinessTable
	Passbooks    passbook.IPassbookTable
	Transactions transaction.ITransactionTable
	Users        user.IUserTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		Businesses:   business.NewBusinessesTable(db),
		Passbooks:    passbook.NewPassbooksTable(db),
		Transactions: transaction.NewTransactionsTable(db),
		Users:        user.NewUsersTable(db),
	}
}
