package sqlite

import (
	"context"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

type maintenanceRepo struct {
	db dbtx
}

func (r *maintenanceRepo) CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) error {
	const query = `
		INSERT INTO maintenance_requests
			(id, listing_id, landlord_id, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.ListingID, m.LandlordID, m.Title, m.Description, string(m.Status),
		now, now,
	)
	return err
}

func (r *maintenanceRepo) GetMaintenanceRequestByID(ctx context.Context, id string) (domain.MaintenanceRequest, error) {
	const query = `
		SELECT id, listing_id, landlord_id, title, description, status, created_at, updated_at
		FROM maintenance_requests WHERE id = ?`

	var m domain.MaintenanceRequest
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ListingID, &m.LandlordID, &m.Title, &m.Description, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.MaintenanceRequest{}, mapNotFound(err)
	}
	return m, nil
}

func (r *maintenanceRepo) ListMaintenanceByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	const query = `
		SELECT id, listing_id, landlord_id, title, description, status, created_at, updated_at
		FROM maintenance_requests WHERE landlord_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err := rows.Scan(
			&m.ID, &m.ListingID, &m.LandlordID, &m.Title, &m.Description, &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
