package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
)

type listingsRepo struct {
	db dbtx
}

const listingColumns = `id, landlord_id, title, address, city, state, postal_code,
	bedrooms, bathrooms, rent_amount, deposit_amount, status, created_at, updated_at`

func (r *listingsRepo) CreateListing(ctx context.Context, l domain.Listing) error {
	const query = `
		INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.LandlordID, l.Title, l.Address, l.City, l.State, l.PostalCode,
		l.Bedrooms, l.Bathrooms, l.RentAmount, l.DepositAmount, string(l.Status),
		now, now,
	)
	return err
}

func (r *listingsRepo) GetListingByID(ctx context.Context, id string) (domain.Listing, error) {
	const query = `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

	l, err := scanListing(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Listing{}, mapNotFound(err)
	}
	return l, nil
}

func (r *listingsRepo) ListListingsByLandlord(ctx context.Context, landlordID string) ([]domain.Listing, error) {
	const query = `
		SELECT ` + listingColumns + ` FROM listings
		WHERE landlord_id = ? ORDER BY created_at DESC`

	return r.queryListings(ctx, query, landlordID)
}

func (r *listingsRepo) ListAvailableListings(ctx context.Context) ([]domain.Listing, error) {
	const query = `
		SELECT ` + listingColumns + ` FROM listings
		WHERE status = 'ACTIVE' ORDER BY created_at DESC`

	return r.queryListings(ctx, query)
}

func (r *listingsRepo) UpdateListing(ctx context.Context, l domain.Listing) error {
	const query = `
		UPDATE listings SET
			title = ?, address = ?, city = ?, state = ?, postal_code = ?,
			bedrooms = ?, bathrooms = ?, rent_amount = ?, deposit_amount = ?,
			updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		l.Title, l.Address, l.City, l.State, l.PostalCode,
		l.Bedrooms, l.Bathrooms, l.RentAmount, l.DepositAmount,
		time.Now().UTC(), l.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *listingsRepo) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	const query = `UPDATE listings SET status = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *listingsRepo) DeleteListing(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *listingsRepo) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.LandlordID, &l.Title, &l.Address, &l.City, &l.State, &l.PostalCode,
		&l.Bedrooms, &l.Bathrooms, &l.RentAmount, &l.DepositAmount, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// requireRow maps "zero rows changed" to ErrNotFound so update/delete paths
// behave like reads against a missing row.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
