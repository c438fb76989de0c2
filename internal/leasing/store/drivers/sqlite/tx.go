package sqlite

import (
	"context"
	"database/sql"

	"github.com/havenlet/leasing/internal/leasing/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations are applied before any tx starts

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) Listings() store.Listings         { return &listingsRepo{db: t.tx} }
func (t *txStore) Applications() store.Applications { return &applicationsRepo{db: t.tx} }
func (t *txStore) Leases() store.Leases             { return &leasesRepo{db: t.tx} }
func (t *txStore) Invites() store.Invites           { return &invitesRepo{db: t.tx} }
func (t *txStore) Maintenance() store.Maintenance   { return &maintenanceRepo{db: t.tx} }
func (t *txStore) Invoices() store.Invoices         { return &invoicesRepo{db: t.tx} }
func (t *txStore) Payments() store.Payments         { return &paymentsRepo{db: t.tx} }
