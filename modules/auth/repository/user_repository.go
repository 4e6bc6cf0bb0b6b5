package repository

import (
	"context"
	"time"

	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.TenantUser, error) {
	query := `SELECT * FROM tenant_users WHERE tenant_id = $1 AND email = $2`
	var user entity.TenantUser
	if err := r.db.GetContext(ctx, &user, query, tenantID, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*entity.TenantUser, error) {
	query := `SELECT * FROM tenant_users WHERE verification_token = $1`
	var user entity.TenantUser
	if err := r.db.GetContext(ctx, &user, query, token); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.TenantUser) error {
	query := `
		INSERT INTO tenant_users (tenant_id, email, password_hash, role, verified, verification_token, verification_token_expires_at, created_at, updated_at)
		VALUES (:tenant_id, :email, :password_hash, :role, :verified, :verification_token, :verification_token_expires_at, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, user)
	if err != nil {
		logger.Error("UserRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&user.ID); err != nil {
			return err
		}
	}
	return nil
}

// MarkVerified clears the verification token so it cannot be replayed.
func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tenant_users
		SET verified = TRUE, verification_token = NULL, verification_token_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("UserRepository:MarkVerified:Error", "id", id, "error", err)
		return err
	}
	return nil
}

// ClearExpiredTokens removes verification tokens past their expiry. Run by the
// worker's cron schedule.
func (r *UserRepository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE tenant_users
		SET verification_token = NULL, verification_token_expires_at = NULL, updated_at = NOW()
		WHERE verification_token IS NOT NULL AND verification_token_expires_at < :now
	`
	result, err := r.db.NamedExecContext(ctx, query, map[string]any{"now": now})
	if err != nil {
		logger.Error("UserRepository:ClearExpiredTokens:Error", "error", err)
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return affected, nil
}
