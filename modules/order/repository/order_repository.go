package repository

import (
	"context"
	"time"

	"guest-order-api/core/database"
	coreEntity "guest-order-api/core/entity"
	"guest-order-api/core/logger"
	"guest-order-api/core/params"
	"guest-order-api/modules/order/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepository struct {
	db database.IDatabase
}

func NewOrderRepository(db database.IDatabase) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order and its lines in one transaction; a failed line
// insert rolls back the whole order.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("OrderRepository:Create:BeginError", "error", err)
		return err
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (tenant_id, order_number, room_number, first_name, last_name, guest_phone_number, location, status, total, created_at, updated_at)
		VALUES (:tenant_id, :order_number, :room_number, :first_name, :last_name, :guest_phone_number, :location, :status, :total, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := tx.NamedQuery(orderQuery, order)
	if err != nil {
		logger.Error("OrderRepository:Create:InsertOrderError", "error", err)
		return err
	}
	if rows.Next() {
		if err := rows.Scan(&order.ID); err != nil {
			rows.Close()
			return err
		}
	}
	rows.Close()

	itemQuery := `
		INSERT INTO order_items (order_id, menu_item_id, name, quantity, price_at_time)
		VALUES (:order_id, :menu_item_id, :name, :quantity, :price_at_time)
	`
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if _, err := tx.NamedExecContext(ctx, itemQuery, order.Items[i]); err != nil {
			logger.Error("OrderRepository:Create:InsertItemError", "order_id", order.ID, "error", err)
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT * FROM orders WHERE tenant_id = $1 AND id = $2`
	var order entity.Order
	if err := r.db.GetContext(ctx, &order, query, tenantID, id); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return &order, nil
}

// List returns a page of orders, newest first, each with its lines attached.
func (r *OrderRepository) List(ctx context.Context, tenantID uuid.UUID, qp *params.QueryParams) (*coreEntity.Pagination[entity.Order], error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE tenant_id = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, tenantID); err != nil {
		logger.Error("OrderRepository:List:CountError", "tenant_id", tenantID, "error", err)
		return nil, err
	}

	query := `
		SELECT * FROM orders
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	orders := []entity.Order{}
	offset := (qp.PageNumber - 1) * qp.PageSize
	if err := r.db.SelectContext(ctx, &orders, query, tenantID, qp.PageSize, offset); err != nil {
		logger.Error("OrderRepository:List:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}

	if len(orders) > 0 {
		ids := make([]uuid.UUID, len(orders))
		for i := range orders {
			ids[i] = orders[i].ID
		}
		items, err := r.itemsFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			orders[i].Items = items[orders[i].ID]
		}
	}

	return &coreEntity.Pagination[entity.Order]{
		Items:      orders,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status entity.Status) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`
	if err := r.db.ExecContext(ctx, query, status, tenantID, id); err != nil {
		logger.Error("OrderRepository:UpdateStatus:Error", "id", id, "error", err)
		return err
	}
	return nil
}

// Sales aggregates quantity and revenue per menu item over a time window,
// ordered by revenue descending.
func (r *OrderRepository) Sales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, category string) ([]entity.SalesRow, error) {
	query := `
		SELECT oi.menu_item_id,
		       oi.name,
		       COALESCE(mi.category, '') AS category,
		       SUM(oi.quantity) AS quantity,
		       SUM(oi.quantity * oi.price_at_time) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.tenant_id = $1
		  AND o.created_at >= $2
		  AND o.created_at < $3
		  AND ($4 = 'all' OR mi.category = $4)
		GROUP BY oi.menu_item_id, oi.name, mi.category
		ORDER BY revenue DESC
	`
	rows := []entity.SalesRow{}
	if err := r.db.SelectContext(ctx, &rows, query, tenantID, from, to, category); err != nil {
		logger.Error("OrderRepository:Sales:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entity.OrderItem, error) {
	query := `SELECT * FROM order_items WHERE order_id = ANY($1) ORDER BY name ASC`
	items := []entity.OrderItem{}
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(ids)); err != nil {
		logger.Error("OrderRepository:itemsFor:Error", "error", err)
		return nil, err
	}

	grouped := make(map[uuid.UUID][]entity.OrderItem, len(orderIDs))
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	return grouped, nil
}
