package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

type paymentsRepo struct {
	db dbtx
}

const paymentColumns = `id, tenant_id, landlord_id, listing_id, type, status,
	amount, paid_date, created_at, updated_at`

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	const query = `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.TenantID, p.LandlordID, p.ListingID, string(p.Type), string(p.Status),
		p.Amount, mapOptionalTime(p.PaidDate), now, now,
	)
	return err
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`

	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paidDate *time.Time) error {
	const query = `
		UPDATE payments SET status = ?, paid_date = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(status), mapOptionalTime(paidDate), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *paymentsRepo) UpdatePaymentAmount(ctx context.Context, id string, amount int64) error {
	const query = `UPDATE payments SET amount = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, amount, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *paymentsRepo) DeletePayment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *paymentsRepo) ListPaymentsForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	const query = `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE landlord_id = ? ORDER BY created_at DESC`

	return r.queryPayments(ctx, query, landlordID)
}

func (r *paymentsRepo) ListPaymentsForTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	// A payment whose linked invoice is not shared with the tenant is hidden
	// from the tenant view; payments without an invoice are always visible.
	const query = `
		SELECT p.id, p.tenant_id, p.landlord_id, p.listing_id, p.type, p.status,
		       p.amount, p.paid_date, p.created_at, p.updated_at
		FROM payments p
		LEFT JOIN invoices i ON i.payment_id = p.id
		WHERE p.tenant_id = ? AND (i.id IS NULL OR i.shared_with_tenant = 1)
		ORDER BY p.created_at DESC`

	return r.queryPayments(ctx, query, tenantID)
}

func (r *paymentsRepo) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row rowScanner) (domain.Payment, error) {
	var (
		p        domain.Payment
		paidDate sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.TenantID, &p.LandlordID, &p.ListingID, &p.Type, &p.Status,
		&p.Amount, &paidDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	p.PaidDate = mapNullTimePtr(paidDate)
	return p, nil
}
