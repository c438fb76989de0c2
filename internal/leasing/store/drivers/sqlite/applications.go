package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

type applicationsRepo struct {
	db dbtx
}

const applicationColumns = `id, public_id, listing_id, landlord_id, tenant_id,
	applicant_name, applicant_email, applicant_phone, move_in_date, status,
	expires_at, lease_id, reviewed_by, reviewed_at, decision_notes,
	created_at, updated_at`

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.Application) error {
	const query = `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.PublicID, a.ListingID, a.LandlordID, mapStringNull(a.TenantID),
		a.ApplicantName, a.ApplicantEmail, a.ApplicantPhone,
		mapOptionalTime(a.MoveInDate), string(a.Status),
		mapOptionalTime(a.ExpiresAt), mapStringNull(a.LeaseID),
		a.ReviewedBy, mapOptionalTime(a.ReviewedAt), a.DecisionNotes,
		now, now,
	)
	return err
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`

	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}
	return a, nil
}

func (r *applicationsRepo) GetApplicationByPublicID(ctx context.Context, publicID string) (domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE public_id = ?`

	a, err := scanApplication(r.db.QueryRowContext(ctx, query, publicID))
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}
	return a, nil
}

func (r *applicationsRepo) ListApplicationsByLandlord(ctx context.Context, landlordID string) ([]domain.Application, error) {
	const query = `
		SELECT ` + applicationColumns + ` FROM applications
		WHERE landlord_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *applicationsRepo) UpdateApplicantFields(ctx context.Context, a domain.Application) error {
	const query = `
		UPDATE applications SET
			tenant_id = ?, applicant_name = ?, applicant_email = ?,
			applicant_phone = ?, move_in_date = ?, status = 'NEW', updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		mapStringNull(a.TenantID), a.ApplicantName, a.ApplicantEmail,
		a.ApplicantPhone, mapOptionalTime(a.MoveInDate), time.Now().UTC(), a.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) SetApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
	reviewedBy string,
	reviewedAt time.Time,
	notes string,
) error {
	const query = `
		UPDATE applications SET
			status = ?, reviewed_by = ?, reviewed_at = ?, decision_notes = ?,
			updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(status), reviewedBy, reviewedAt, notes, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) LinkLease(ctx context.Context, id string, leaseID string) error {
	const query = `UPDATE applications SET lease_id = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, leaseID, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) DeleteApplication(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) CreateEmploymentInfo(ctx context.Context, e domain.EmploymentInfo) error {
	const query = `
		INSERT INTO employment_info
			(id, application_id, employer, position, monthly_income, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ApplicationID, e.Employer, e.Position, e.MonthlyIncome,
		mapOptionalTime(e.StartDate), mapOptionalTime(e.EndDate), time.Now().UTC(),
	)
	return err
}

func (r *applicationsRepo) ListEmploymentByApplication(ctx context.Context, applicationID string) ([]domain.EmploymentInfo, error) {
	const query = `
		SELECT id, application_id, employer, position, monthly_income, start_date, end_date, created_at
		FROM employment_info WHERE application_id = ? ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EmploymentInfo
	for rows.Next() {
		var e domain.EmploymentInfo
		var startDate, endDate sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.ApplicationID, &e.Employer, &e.Position, &e.MonthlyIncome,
			&startDate, &endDate, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.StartDate = mapNullTimePtr(startDate)
		e.EndDate = mapNullTimePtr(endDate)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *applicationsRepo) DeleteEmploymentByApplication(ctx context.Context, applicationID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM employment_info WHERE application_id = ?`, applicationID)
	return err
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var (
		a          domain.Application
		tenantID   sql.NullString
		moveIn     sql.NullTime
		expiresAt  sql.NullTime
		leaseID    sql.NullString
		reviewedAt sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.PublicID, &a.ListingID, &a.LandlordID, &tenantID,
		&a.ApplicantName, &a.ApplicantEmail, &a.ApplicantPhone, &moveIn, &a.Status,
		&expiresAt, &leaseID, &a.ReviewedBy, &reviewedAt, &a.DecisionNotes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}

	a.TenantID = mapNullString(tenantID)
	a.MoveInDate = mapNullTimePtr(moveIn)
	a.ExpiresAt = mapNullTimePtr(expiresAt)
	a.LeaseID = mapNullString(leaseID)
	a.ReviewedAt = mapNullTimePtr(reviewedAt)
	return a, nil
}
