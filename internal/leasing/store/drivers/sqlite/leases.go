package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
)

type leasesRepo struct {
	db dbtx
}

// Both variants share one lifecycle; they differ only in the snapshot columns
// the standard table carries. Dispatch is a table-name switch so every
// operation has a single code path.
func leaseTable(t domain.LeaseType) string {
	if t == domain.LeaseCustom {
		return "custom_leases"
	}
	return "leases"
}

const leaseCommonColumns = `id, landlord_id, tenant_id, listing_id, status,
	start_date, end_date, rent_amount, deposit_amount, document_url,
	termination_date, termination_reason, termination_notes, terminated_by,
	created_at, updated_at`

const leaseSnapshotColumns = `landlord_name, landlord_email, landlord_phone,
	tenant_name, tenant_email, tenant_phone,
	property_address, property_city, property_state, property_postal`

func (r *leasesRepo) CreateLease(ctx context.Context, l domain.Lease) error {
	now := time.Now().UTC()

	if l.Type == domain.LeaseCustom {
		query := `
			INSERT INTO custom_leases (` + leaseCommonColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := r.db.ExecContext(ctx, query,
			l.ID, l.LandlordID, mapStringNull(l.TenantID), l.ListingID, string(l.Status),
			l.StartDate, l.EndDate, l.RentAmount, l.DepositAmount, l.DocumentURL,
			mapOptionalTime(l.TerminationDate), l.TerminationReason, l.TerminationNotes, l.TerminatedBy,
			now, now,
		)
		return err
	}

	snap := l.Snapshot
	if snap == nil {
		snap = &domain.LeaseSnapshot{}
	}

	query := `
		INSERT INTO leases (` + leaseCommonColumns + `, ` + leaseSnapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.LandlordID, mapStringNull(l.TenantID), l.ListingID, string(l.Status),
		l.StartDate, l.EndDate, l.RentAmount, l.DepositAmount, l.DocumentURL,
		mapOptionalTime(l.TerminationDate), l.TerminationReason, l.TerminationNotes, l.TerminatedBy,
		now, now,
		snap.LandlordName, snap.LandlordEmail, snap.LandlordPhone,
		snap.TenantName, snap.TenantEmail, snap.TenantPhone,
		snap.PropertyAddress, snap.PropertyCity, snap.PropertyState, snap.PropertyPostal,
	)
	return err
}

func (r *leasesRepo) GetLease(ctx context.Context, ref domain.LeaseRef) (domain.Lease, error) {
	if ref.Type == domain.LeaseCustom {
		query := `SELECT ` + leaseCommonColumns + ` FROM custom_leases WHERE id = ?`
		l, err := scanCustomLease(r.db.QueryRowContext(ctx, query, ref.ID))
		if err != nil {
			return domain.Lease{}, mapNotFound(err)
		}
		return l, nil
	}

	query := `SELECT ` + leaseCommonColumns + `, ` + leaseSnapshotColumns + ` FROM leases WHERE id = ?`
	l, err := scanStandardLease(r.db.QueryRowContext(ctx, query, ref.ID))
	if err != nil {
		return domain.Lease{}, mapNotFound(err)
	}
	return l, nil
}

func (r *leasesRepo) ListLeasesByLandlord(ctx context.Context, landlordID string) ([]domain.Lease, error) {
	return r.listLeases(ctx, "landlord_id", landlordID)
}

func (r *leasesRepo) ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	return r.listLeases(ctx, "tenant_id", tenantID)
}

func (r *leasesRepo) listLeases(ctx context.Context, column, value string) ([]domain.Lease, error) {
	var out []domain.Lease

	standardQuery := fmt.Sprintf(
		`SELECT `+leaseCommonColumns+`, `+leaseSnapshotColumns+` FROM leases WHERE %s = ? ORDER BY created_at DESC`,
		column)
	rows, err := r.db.QueryContext(ctx, standardQuery, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		l, err := scanStandardLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	customQuery := fmt.Sprintf(
		`SELECT `+leaseCommonColumns+` FROM custom_leases WHERE %s = ? ORDER BY created_at DESC`,
		column)
	customRows, err := r.db.QueryContext(ctx, customQuery, value)
	if err != nil {
		return nil, err
	}
	defer customRows.Close()
	for customRows.Next() {
		l, err := scanCustomLease(customRows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, customRows.Err()
}

func (r *leasesRepo) UpdateLeaseTerms(ctx context.Context, l domain.Lease) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			start_date = ?, end_date = ?, rent_amount = ?, deposit_amount = ?,
			document_url = ?, updated_at = ?
		WHERE id = ?`, leaseTable(l.Type))

	res, err := r.db.ExecContext(ctx, query,
		l.StartDate, l.EndDate, l.RentAmount, l.DepositAmount,
		l.DocumentURL, time.Now().UTC(), l.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *leasesRepo) ActivateLease(ctx context.Context, ref domain.LeaseRef, tenantID string, now time.Time) (int64, error) {
	// The DRAFT guard makes activation race-safe: a second transaction
	// activating the same lease changes zero rows.
	query := fmt.Sprintf(`
		UPDATE %s SET tenant_id = ?, status = 'ACTIVE', updated_at = ?
		WHERE id = ? AND status = 'DRAFT'`, leaseTable(ref.Type))

	res, err := r.db.ExecContext(ctx, query, tenantID, now, ref.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *leasesRepo) TerminateLease(ctx context.Context, ref domain.LeaseRef, date time.Time, reason, notes, terminatedBy string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			status = 'TERMINATED', termination_date = ?, termination_reason = ?,
			termination_notes = ?, terminated_by = ?, updated_at = ?
		WHERE id = ?`, leaseTable(ref.Type))

	res, err := r.db.ExecContext(ctx, query, date, reason, notes, terminatedBy, time.Now().UTC(), ref.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *leasesRepo) ExpireOverdue(ctx context.Context, now time.Time) error {
	for _, table := range []string{"leases", "custom_leases"} {
		query := fmt.Sprintf(`
			UPDATE %s SET status = 'EXPIRED', updated_at = ?
			WHERE status = 'ACTIVE' AND end_date < ?`, table)

		if _, err := r.db.ExecContext(ctx, query, now, now); err != nil {
			return err
		}
	}
	return nil
}

func (r *leasesRepo) FindActiveLeaseByTenant(ctx context.Context, tenantID string, now time.Time) (domain.Lease, error) {
	standardQuery := `
		SELECT ` + leaseCommonColumns + `, ` + leaseSnapshotColumns + ` FROM leases
		WHERE tenant_id = ? AND status = 'ACTIVE' AND end_date >= ?
		LIMIT 1`

	l, err := scanStandardLease(r.db.QueryRowContext(ctx, standardQuery, tenantID, now))
	if err == nil {
		return l, nil
	}
	if mapNotFound(err) != store.ErrNotFound {
		return domain.Lease{}, err
	}

	customQuery := `
		SELECT ` + leaseCommonColumns + ` FROM custom_leases
		WHERE tenant_id = ? AND status = 'ACTIVE' AND end_date >= ?
		LIMIT 1`

	l, err = scanCustomLease(r.db.QueryRowContext(ctx, customQuery, tenantID, now))
	if err != nil {
		return domain.Lease{}, mapNotFound(err)
	}
	return l, nil
}

func (r *leasesRepo) FindActiveLeaseByListing(ctx context.Context, listingID string, now time.Time) (domain.Lease, error) {
	standardQuery := `
		SELECT ` + leaseCommonColumns + `, ` + leaseSnapshotColumns + ` FROM leases
		WHERE listing_id = ? AND status = 'ACTIVE' AND end_date >= ?
		LIMIT 1`

	l, err := scanStandardLease(r.db.QueryRowContext(ctx, standardQuery, listingID, now))
	if err == nil {
		return l, nil
	}
	if mapNotFound(err) != store.ErrNotFound {
		return domain.Lease{}, err
	}

	customQuery := `
		SELECT ` + leaseCommonColumns + ` FROM custom_leases
		WHERE listing_id = ? AND status = 'ACTIVE' AND end_date >= ?
		LIMIT 1`

	l, err = scanCustomLease(r.db.QueryRowContext(ctx, customQuery, listingID, now))
	if err != nil {
		return domain.Lease{}, mapNotFound(err)
	}
	return l, nil
}

func (r *leasesRepo) SetDocumentURL(ctx context.Context, ref domain.LeaseRef, url string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET document_url = ?, updated_at = ? WHERE id = ?`, leaseTable(ref.Type))

	res, err := r.db.ExecContext(ctx, query, url, time.Now().UTC(), ref.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *leasesRepo) DeleteLease(ctx context.Context, ref domain.LeaseRef) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, leaseTable(ref.Type))

	res, err := r.db.ExecContext(ctx, query, ref.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanLeaseCommon(row rowScanner, l *domain.Lease, extra ...any) error {
	var (
		tenantID        sql.NullString
		terminationDate sql.NullTime
	)
	dest := []any{
		&l.ID, &l.LandlordID, &tenantID, &l.ListingID, &l.Status,
		&l.StartDate, &l.EndDate, &l.RentAmount, &l.DepositAmount, &l.DocumentURL,
		&terminationDate, &l.TerminationReason, &l.TerminationNotes, &l.TerminatedBy,
		&l.CreatedAt, &l.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	l.TenantID = mapNullString(tenantID)
	l.TerminationDate = mapNullTimePtr(terminationDate)
	return nil
}

func scanStandardLease(row rowScanner) (domain.Lease, error) {
	l := domain.Lease{Type: domain.LeaseStandard}
	var snap domain.LeaseSnapshot

	err := scanLeaseCommon(row, &l,
		&snap.LandlordName, &snap.LandlordEmail, &snap.LandlordPhone,
		&snap.TenantName, &snap.TenantEmail, &snap.TenantPhone,
		&snap.PropertyAddress, &snap.PropertyCity, &snap.PropertyState, &snap.PropertyPostal,
	)
	if err != nil {
		return domain.Lease{}, err
	}
	l.Snapshot = &snap
	return l, nil
}

func scanCustomLease(row rowScanner) (domain.Lease, error) {
	l := domain.Lease{Type: domain.LeaseCustom}
	if err := scanLeaseCommon(row, &l); err != nil {
		return domain.Lease{}, err
	}
	return l, nil
}
