package repository

import (
	"context"

	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/modules/menu/entity"

	"github.com/google/uuid"
)

type MenuRepository struct {
	db database.IDatabase
}

func NewMenuRepository(db database.IDatabase) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListByCategory returns the tenant's items of one meal category, ordered for
// stable menu display.
func (r *MenuRepository) ListByCategory(ctx context.Context, tenantID uuid.UUID, category entity.Category) ([]entity.MenuItem, error) {
	query := `
		SELECT * FROM menu_items
		WHERE tenant_id = $1 AND category = $2
		ORDER BY menu_category, name_de
	`
	items := []entity.MenuItem{}
	if err := r.db.SelectContext(ctx, &items, query, tenantID, category); err != nil {
		logger.Error("MenuRepository:ListByCategory:Error", "tenant_id", tenantID, "category", category, "error", err)
		return nil, err
	}
	return items, nil
}

// ListAll returns every item of the tenant for the admin editor.
func (r *MenuRepository) ListAll(ctx context.Context, tenantID uuid.UUID) ([]entity.MenuItem, error) {
	query := `
		SELECT * FROM menu_items
		WHERE tenant_id = $1
		ORDER BY category, menu_category, name_de
	`
	items := []entity.MenuItem{}
	if err := r.db.SelectContext(ctx, &items, query, tenantID); err != nil {
		logger.Error("MenuRepository:ListAll:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.MenuItem, error) {
	query := `SELECT * FROM menu_items WHERE tenant_id = $1 AND id = $2`
	var item entity.MenuItem
	if err := r.db.GetContext(ctx, &item, query, tenantID, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (tenant_id, name, name_de, description, price, category,
			menu_category, beverage_category, image_url, available, time_restrictions,
			created_at, updated_at)
		VALUES (:tenant_id, :name, :name_de, :description, :price, :category,
			:menu_category, :beverage_category, :image_url, :available, :time_restrictions,
			:created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, item)
	if err != nil {
		logger.Error("MenuRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&item.ID)
	}
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = :name, name_de = :name_de, description = :description, price = :price,
		    category = :category, menu_category = :menu_category,
		    beverage_category = :beverage_category, image_url = :image_url,
		    available = :available, time_restrictions = :time_restrictions,
		    updated_at = :updated_at
		WHERE tenant_id = :tenant_id AND id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		logger.Error("MenuRepository:Update:Error", "id", item.ID, "error", err)
		return err
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE tenant_id = $1 AND id = $2`
	if err := r.db.ExecContext(ctx, query, tenantID, id); err != nil {
		logger.Error("MenuRepository:Delete:Error", "id", id, "error", err)
		return err
	}
	return nil
}

// IsReferencedByOrders reports whether any order line points at the item.
// Referenced items must not be deleted, order history depends on them.
func (r *MenuRepository) IsReferencedByOrders(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM order_items WHERE menu_item_id = $1`
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		logger.Error("MenuRepository:IsReferencedByOrders:Error", "id", id, "error", err)
		return false, err
	}
	return count > 0, nil
}
