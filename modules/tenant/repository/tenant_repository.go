package repository

import (
	"context"

	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/modules/tenant/entity"

	"github.com/google/uuid"
)

type TenantRepository struct {
	db database.IDatabase
}

func NewTenantRepository(db database.IDatabase) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	query := `SELECT * FROM tenants WHERE subdomain = $1`
	var tenant entity.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, subdomain); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	query := `SELECT * FROM tenants WHERE id = $1`
	var tenant entity.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, id); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]entity.Tenant, error) {
	query := `SELECT * FROM tenants ORDER BY created_at ASC`
	tenants := []entity.Tenant{}
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		logger.Error("TenantRepository:List:Error", "error", err)
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (name, subdomain, settings, subscription_tier, active, created_at, updated_at)
		VALUES (:name, :subdomain, :settings, :subscription_tier, :active, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, tenant)
	if err != nil {
		logger.Error("TenantRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&tenant.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *TenantRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.Settings) error {
	query := `UPDATE tenants SET settings = $1, updated_at = NOW() WHERE id = $2`
	if err := r.db.ExecContext(ctx, query, settings, id); err != nil {
		logger.Error("TenantRepository:UpdateSettings:Error", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *TenantRepository) UpdateTier(ctx context.Context, id uuid.UUID, tier entity.SubscriptionTier) error {
	query := `UPDATE tenants SET subscription_tier = $1, updated_at = NOW() WHERE id = $2`
	if err := r.db.ExecContext(ctx, query, tier, id); err != nil {
		logger.Error("TenantRepository:UpdateTier:Error", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *TenantRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE tenants SET active = $1, updated_at = NOW() WHERE id = $2`
	if err := r.db.ExecContext(ctx, query, active, id); err != nil {
		logger.Error("TenantRepository:SetActive:Error", "id", id, "error", err)
		return err
	}
	return nil
}
