package repository

import (
	"context"
	"time"

	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/modules/menu/entity"

	"github.com/google/uuid"
)

type SpecialRepository struct {
	db database.IDatabase
}

func NewSpecialRepository(db database.IDatabase) *SpecialRepository {
	return &SpecialRepository{db: db}
}

// ListCurrent returns specials whose validity window contains now.
func (r *SpecialRepository) ListCurrent(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]entity.DailySpecial, error) {
	query := `
		SELECT * FROM daily_specials
		WHERE tenant_id = $1 AND valid_from <= $2 AND valid_until >= $2
		ORDER BY valid_from DESC
	`
	specials := []entity.DailySpecial{}
	if err := r.db.SelectContext(ctx, &specials, query, tenantID, now); err != nil {
		logger.Error("SpecialRepository:ListCurrent:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return specials, nil
}

// ListAll returns every special of the tenant, newest validity first.
func (r *SpecialRepository) ListAll(ctx context.Context, tenantID uuid.UUID) ([]entity.DailySpecial, error) {
	query := `
		SELECT * FROM daily_specials
		WHERE tenant_id = $1
		ORDER BY valid_from DESC
	`
	specials := []entity.DailySpecial{}
	if err := r.db.SelectContext(ctx, &specials, query, tenantID); err != nil {
		logger.Error("SpecialRepository:ListAll:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return specials, nil
}

func (r *SpecialRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.DailySpecial, error) {
	query := `SELECT * FROM daily_specials WHERE tenant_id = $1 AND id = $2`
	var special entity.DailySpecial
	if err := r.db.GetContext(ctx, &special, query, tenantID, id); err != nil {
		return nil, err
	}
	return &special, nil
}

func (r *SpecialRepository) Create(ctx context.Context, special *entity.DailySpecial) error {
	query := `
		INSERT INTO daily_specials (tenant_id, name, name_de, description, price,
			special_type, image_url, highlight_color, valid_from, valid_until,
			time_restrictions, created_at, updated_at)
		VALUES (:tenant_id, :name, :name_de, :description, :price,
			:special_type, :image_url, :highlight_color, :valid_from, :valid_until,
			:time_restrictions, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, special)
	if err != nil {
		logger.Error("SpecialRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&special.ID)
	}
	return nil
}

func (r *SpecialRepository) Update(ctx context.Context, special *entity.DailySpecial) error {
	query := `
		UPDATE daily_specials
		SET name = :name, name_de = :name_de, description = :description, price = :price,
		    special_type = :special_type, image_url = :image_url,
		    highlight_color = :highlight_color, valid_from = :valid_from,
		    valid_until = :valid_until, time_restrictions = :time_restrictions,
		    updated_at = :updated_at
		WHERE tenant_id = :tenant_id AND id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, special); err != nil {
		logger.Error("SpecialRepository:Update:Error", "id", special.ID, "error", err)
		return err
	}
	return nil
}

func (r *SpecialRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM daily_specials WHERE tenant_id = $1 AND id = $2`
	if err := r.db.ExecContext(ctx, query, tenantID, id); err != nil {
		logger.Error("SpecialRepository:Delete:Error", "id", id, "error", err)
		return err
	}
	return nil
}

// PurgeExpired removes specials whose validity ended before the cutoff.
// Called from the worker's nightly sweep.
func (r *SpecialRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.NamedExecContext(ctx, `DELETE FROM daily_specials WHERE valid_until < :cutoff`, map[string]interface{}{"cutoff": cutoff})
	if err != nil {
		logger.Error("SpecialRepository:PurgeExpired:Error", "error", err)
		return 0, err
	}
	return result.RowsAffected()
}
