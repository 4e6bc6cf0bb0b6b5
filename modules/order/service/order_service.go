package service

import (
	"context"
	"fmt"
	"time"

	coreEntity "guest-order-api/core/entity"
	"guest-order-api/core/errors"
	"guest-order-api/core/logger"
	"guest-order-api/core/params"
	"guest-order-api/core/utils"
	menuEntity "guest-order-api/modules/menu/entity"
	menuService "guest-order-api/modules/menu/service"
	"guest-order-api/modules/notify"
	"guest-order-api/modules/order/dto"
	"guest-order-api/modules/order/entity"
	tenantEntity "guest-order-api/modules/tenant/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// OrderStore is the persistence surface the service needs. Implemented by
// repository.OrderRepository.
type OrderStore interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, qp *params.QueryParams) (*coreEntity.Pagination[entity.Order], error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status entity.Status) error
	Sales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, category string) ([]entity.SalesRow, error)
}

// ItemCatalog is the slice of the menu service order placement reads from.
type ItemCatalog interface {
	GetItem(ctx context.Context, tenantID, id uuid.UUID) (*menuEntity.MenuItem, error)
}

// SlotSnapshots yields the current time slot set for a tenant.
type SlotSnapshots interface {
	SnapshotFor(ctx context.Context, tenantID uuid.UUID) ([]tsEntity.TimeSlot, error)
}

// TenantSource resolves the tenant that owns an order, for notification
// settings.
type TenantSource interface {
	Get(ctx context.Context, id uuid.UUID) (*tenantEntity.Tenant, error)
}

// Enqueuer is the background task client. Implemented by asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type OrderService struct {
	orders  OrderStore
	menu    ItemCatalog
	slots   SlotSnapshots
	tenants TenantSource
	queue   Enqueuer
}

func NewOrderService(orders OrderStore, menu ItemCatalog, slots SlotSnapshots, tenants TenantSource, queue Enqueuer) *OrderService {
	return &OrderService{orders: orders, menu: menu, slots: slots, tenants: tenants, queue: queue}
}

// Create places a guest order. Every line is checked against the current slot
// snapshot; one non-orderable item rejects the whole order. The total is
// computed from database prices, never from the request.
func (s *OrderService) Create(ctx context.Context, tenantID uuid.UUID, req *dto.CreateOrderRequest, now time.Time) (*entity.Order, error) {
	snapshot, err := s.slots.SnapshotFor(ctx, tenantID)
	if err != nil {
		logger.Warn("OrderService:Create:SnapshotError", "tenant_id", tenantID, "error", err)
		snapshot = nil
	}

	order := &entity.Order{
		TenantID:         tenantID,
		OrderNumber:      utils.GenerateID(),
		RoomNumber:       req.RoomNumber,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		GuestPhoneNumber: req.GuestPhoneNumber,
		Location:         entity.Location(req.Location),
		Status:           entity.StatusNew,
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	for _, line := range req.Items {
		itemID, parseErr := uuid.Parse(line.MenuItemID)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid menu item id", map[string]string{"menu_item_id": line.MenuItemID})
		}

		item, getErr := s.menu.GetItem(ctx, tenantID, itemID)
		if getErr != nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "menu item not found", map[string]string{"menu_item_id": line.MenuItemID})
		}

		if !item.Available || !menuService.IsOrderable(item.TimeRestrictions, snapshot, now) {
			return nil, errors.NewAppError(errors.ErrItemNotOrderable, "item cannot be ordered right now", map[string]string{"menu_item_id": line.MenuItemID, "name": item.Name})
		}

		name := item.NameDE
		if name == "" {
			name = item.Name
		}
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID:  item.ID,
			Name:        name,
			Quantity:    line.Quantity,
			PriceAtTime: item.Price,
		})
		order.Total += float64(line.Quantity) * item.Price
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to place order", nil)
	}

	s.enqueueOrderSMS(ctx, order, snapshot, now)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "order not found", nil)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, tenantID uuid.UUID, qp *params.QueryParams) (*coreEntity.Pagination[entity.Order], error) {
	page, err := s.orders.List(ctx, tenantID, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list orders", nil)
	}
	return page, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, req *dto.UpdateStatusRequest) (*entity.Order, error) {
	status := entity.Status(req.Status)
	if !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown order status", nil)
	}

	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, tenantID, id, status); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update order status", nil)
	}
	return s.Get(ctx, tenantID, id)
}

// Sales aggregates per-item quantity and revenue for the requested range.
func (s *OrderService) Sales(ctx context.Context, tenantID uuid.UUID, query *dto.SalesQuery, now time.Time) (*dto.SalesResponse, error) {
	rangeName := query.Range
	if rangeName == "" {
		rangeName = "today"
	}
	category := query.Category
	if category == "" {
		category = "all"
	}

	from, to := salesWindow(rangeName, now)
	rows, err := s.orders.Sales(ctx, tenantID, from, to, category)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to aggregate sales", nil)
	}

	resp := &dto.SalesResponse{Range: rangeName, Category: category, Rows: rows}
	for _, row := range rows {
		resp.Total += row.Revenue
	}
	return resp, nil
}

// salesWindow maps a named range onto [from, to) in local time.
func salesWindow(name string, now time.Time) (time.Time, time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch name {
	case "yesterday":
		return startOfDay.AddDate(0, 0, -1), startOfDay
	case "week":
		return startOfDay.AddDate(0, 0, -6), startOfDay.AddDate(0, 0, 1)
	case "month":
		return startOfDay.AddDate(0, -1, 0), startOfDay.AddDate(0, 0, 1)
	default: // today
		return startOfDay, startOfDay.AddDate(0, 0, 1)
	}
}

// enqueueOrderSMS notifies staff about a new order. The recipient is the
// staff number of an active slot, falling back to the tenant's contact phone.
// Failures never fail the order.
func (s *OrderService) enqueueOrderSMS(ctx context.Context, order *entity.Order, snapshot []tsEntity.TimeSlot, now time.Time) {
	tenant, err := s.tenants.Get(ctx, order.TenantID)
	if err != nil {
		logger.Warn("OrderService:enqueueOrderSMS:TenantError", "tenant_id", order.TenantID, "error", err)
		return
	}

	recipient := tenant.Settings.ContactInfo.Phone
	for _, slot := range snapshot {
		if slot.StaffNotificationNumber == nil || *slot.StaffNotificationNumber == "" {
			continue
		}
		if menuService.IsTimeInSlot(now, slot.StartTime, slot.EndTime) {
			recipient = *slot.StaffNotificationNumber
			break
		}
	}
	if recipient == "" {
		logger.Warn("OrderService:enqueueOrderSMS:NoRecipient", "tenant_id", order.TenantID, "order_id", order.ID)
		return
	}

	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}

	task, err := notify.NewOrderSMSTask(notify.OrderSMSPayload{
		TenantID:    order.TenantID,
		TenantName:  tenant.Name,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Location:    string(order.Location),
		RoomNumber:  order.RoomNumber,
		FirstName:   order.FirstName,
		LastName:    order.LastName,
		GuestPhone:  order.GuestPhoneNumber,
		ItemLines:   lines,
		Recipient:   recipient,
	})
	if err != nil {
		logger.Error("OrderService:enqueueOrderSMS:TaskError", "order_id", order.ID, "error", err)
		return
	}
	if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
		logger.Error("OrderService:enqueueOrderSMS:EnqueueError", "order_id", order.ID, "error", err)
	}
}
