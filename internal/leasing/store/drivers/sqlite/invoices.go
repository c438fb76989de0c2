package sqlite

import (
	"context"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

type invoicesRepo struct {
	db dbtx
}

const invoiceColumns = `id, maintenance_request_id, payment_id, landlord_id,
	description, amount, status, shared_with_tenant, created_at, updated_at`

func (r *invoicesRepo) CreateInvoice(ctx context.Context, inv domain.Invoice) error {
	const query = `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.MaintenanceRequestID, inv.PaymentID, inv.LandlordID,
		inv.Description, inv.Amount, string(inv.Status), inv.SharedWithTenant,
		now, now,
	)
	return err
}

func (r *invoicesRepo) GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Invoice{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invoicesRepo) ListInvoicesByLandlord(ctx context.Context, landlordID string) ([]domain.Invoice, error) {
	const query = `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE landlord_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invoicesRepo) UpdateInvoice(ctx context.Context, inv domain.Invoice) error {
	const query = `
		UPDATE invoices SET
			description = ?, amount = ?, shared_with_tenant = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		inv.Description, inv.Amount, inv.SharedWithTenant, time.Now().UTC(), inv.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invoicesRepo) UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	const query = `UPDATE invoices SET status = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invoicesRepo) DeleteInvoice(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanInvoice(row rowScanner) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.ID, &inv.MaintenanceRequestID, &inv.PaymentID, &inv.LandlordID,
		&inv.Description, &inv.Amount, &inv.Status, &inv.SharedWithTenant,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}
