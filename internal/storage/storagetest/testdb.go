// Package storagetest provides helpers for tests that need a real Postgres.
// Tests are skipped unless TEST_DATABASE_DSN points at a disposable database.
package storagetest

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    photo TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS businesses (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    industry TEXT NOT NULL,
    founded_year INT NOT NULL CHECK (founded_year BETWEEN 1800 AND 2100),
    revenue DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (revenue >= 0),
    employees INT NOT NULL CHECK (employees >= 1),
    location TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS passbook (
    id BIGSERIAL PRIMARY KEY,
    business_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transaction (
    id BIGSERIAL PRIMARY KEY,
    passbook_id BIGINT NOT NULL REFERENCES passbook (id) ON DELETE CASCADE,
    txn_type TEXT NOT NULL CHECK (txn_type IN ('debit', 'credit')),
    amount NUMERIC(15, 2) NOT NULL CHECK (amount > 0),
    description TEXT,
    txn_date TIMESTAMPTZ NOT NULL DEFAULT now(),
    reference_no TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Open connects to the test database, ensures the schema exists, and wipes
// all rows so every test starts clean.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := db.Exec(`TRUNCATE transaction, passbook, businesses, users RESTART IDENTITY`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}

	return db
}
