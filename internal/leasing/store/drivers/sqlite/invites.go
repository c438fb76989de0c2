package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.LeaseInvite) error {
	const query = `
		INSERT INTO lease_invites
			(id, token_hash, lease_id, lease_type, tenant_id, created_by,
			 expires_at, signed, signed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.TokenHash, inv.LeaseID, string(inv.LeaseType),
		mapStringNull(inv.TenantID), inv.CreatedBy, inv.ExpiresAt,
		inv.Signed, mapOptionalTime(inv.SignedAt), now, now,
	)
	return err
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.LeaseInvite, error) {
	const query = `
		SELECT id, token_hash, lease_id, lease_type, tenant_id, created_by,
		       expires_at, signed, signed_at, created_at, updated_at
		FROM lease_invites WHERE token_hash = ?`

	var (
		inv      domain.LeaseInvite
		tenantID sql.NullString
		signedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, hash).Scan(
		&inv.ID, &inv.TokenHash, &inv.LeaseID, &inv.LeaseType, &tenantID,
		&inv.CreatedBy, &inv.ExpiresAt, &inv.Signed, &signedAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.LeaseInvite{}, mapNotFound(err)
	}

	inv.TenantID = mapNullString(tenantID)
	inv.SignedAt = mapNullTimePtr(signedAt)
	return inv, nil
}

func (r *invitesRepo) MarkInviteSigned(ctx context.Context, inviteID, tenantID string, now time.Time) (int64, error) {
	// The signed = 0 guard is the concurrency control for double signing:
	// two transactions may both read the invite unsigned, but only one of
	// these updates can change a row.
	const query = `
		UPDATE lease_invites SET signed = 1, tenant_id = ?, signed_at = ?, updated_at = ?
		WHERE id = ? AND signed = 0`

	res, err := r.db.ExecContext(ctx, query, tenantID, now, now, inviteID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitesRepo) DeleteExpiredUnsignedInvites(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM lease_invites WHERE signed = 0 AND expires_at < ?`, now)
	return err
}
