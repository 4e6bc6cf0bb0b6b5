package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	coreEntity "guest-order-api/core/entity"
	apperrors "guest-order-api/core/errors"
	"guest-order-api/core/params"
	menuEntity "guest-order-api/modules/menu/entity"
	"guest-order-api/modules/notify"
	"guest-order-api/modules/order/dto"
	"guest-order-api/modules/order/entity"
	tenantEntity "guest-order-api/modules/tenant/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type fakeOrderStore struct {
	created []*entity.Order
}

func (f *fakeOrderStore) Create(ctx context.Context, order *entity.Order) error {
	order.ID = uuid.New()
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Order, error) {
	return nil, fmt.Errorf("no order %s", id)
}

func (f *fakeOrderStore) List(ctx context.Context, tenantID uuid.UUID, qp *params.QueryParams) (*coreEntity.Pagination[entity.Order], error) {
	return &coreEntity.Pagination[entity.Order]{}, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status entity.Status) error {
	return nil
}

func (f *fakeOrderStore) Sales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, category string) ([]entity.SalesRow, error) {
	return nil, nil
}

type fakeCatalog map[uuid.UUID]*menuEntity.MenuItem

func (f fakeCatalog) GetItem(ctx context.Context, tenantID, id uuid.UUID) (*menuEntity.MenuItem, error) {
	item, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("no item %s", id)
	}
	return item, nil
}

type fakeSnapshots struct {
	slots []tsEntity.TimeSlot
}

func (f *fakeSnapshots) SnapshotFor(ctx context.Context, tenantID uuid.UUID) ([]tsEntity.TimeSlot, error) {
	return f.slots, nil
}

type fakeTenantSource struct {
	tenant *tenantEntity.Tenant
}

func (f *fakeTenantSource) Get(ctx context.Context, id uuid.UUID) (*tenantEntity.Tenant, error) {
	if f.tenant == nil {
		return nil, fmt.Errorf("no tenant %s", id)
	}
	return f.tenant, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func lunchSlot(id uuid.UUID, staff *string) tsEntity.TimeSlot {
	slot := tsEntity.TimeSlot{Label: "Mittagessen", StartTime: "12:00:00", EndTime: "14:00:00", StaffNotificationNumber: staff}
	slot.ID = id
	return slot
}

func catalogItem(id uuid.UUID, name, nameDE string, price float64, available bool, restrictions menuEntity.Restrictions) *menuEntity.MenuItem {
	item := &menuEntity.MenuItem{
		Name:             name,
		NameDE:           nameDE,
		Price:            price,
		Category:         menuEntity.CategoryLunch,
		Available:        available,
		TimeRestrictions: restrictions,
	}
	item.ID = id
	return item
}

func orderRequest(lines ...dto.OrderLineRequest) *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		RoomNumber:       "204",
		FirstName:        "Anna",
		LastName:         "Huber",
		GuestPhoneNumber: "+436601234567",
		Location:         "room",
		Items:            lines,
	}
}

func appErrCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	ae, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return ae.Code
}

func TestCreateRejectsDisabledItemInsideWindow(t *testing.T) {
	tenantID := uuid.New()
	slotID := uuid.New()
	itemID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	store := &fakeOrderStore{}
	svc := NewOrderService(
		store,
		fakeCatalog{itemID: catalogItem(itemID, "Schnitzel", "Wiener Schnitzel", 18.50, false, menuEntity.Restrictions{slotID.String(): true})},
		&fakeSnapshots{slots: []tsEntity.TimeSlot{lunchSlot(slotID, nil)}},
		&fakeTenantSource{},
		&fakeEnqueuer{},
	)

	// The slot window contains now, but the administrator toggle is off.
	_, err := svc.Create(context.Background(), tenantID, orderRequest(dto.OrderLineRequest{MenuItemID: itemID.String(), Quantity: 1}), now)
	if code := appErrCode(t, err); code != apperrors.ErrItemNotOrderable {
		t.Errorf("expected %s, got %s", apperrors.ErrItemNotOrderable, code)
	}
	if len(store.created) != 0 {
		t.Errorf("order must not be stored, got %d", len(store.created))
	}
}

func TestCreateRejectsItemOutsideWindow(t *testing.T) {
	tenantID := uuid.New()
	slotID := uuid.New()
	itemID := uuid.New()
	now := time.Date(2026, 8, 31, 16, 0, 0, 0, time.UTC)

	store := &fakeOrderStore{}
	svc := NewOrderService(
		store,
		fakeCatalog{itemID: catalogItem(itemID, "Schnitzel", "", 18.50, true, menuEntity.Restrictions{slotID.String(): true})},
		&fakeSnapshots{slots: []tsEntity.TimeSlot{lunchSlot(slotID, nil)}},
		&fakeTenantSource{},
		&fakeEnqueuer{},
	)

	_, err := svc.Create(context.Background(), tenantID, orderRequest(dto.OrderLineRequest{MenuItemID: itemID.String(), Quantity: 1}), now)
	if code := appErrCode(t, err); code != apperrors.ErrItemNotOrderable {
		t.Errorf("expected %s, got %s", apperrors.ErrItemNotOrderable, code)
	}
	if len(store.created) != 0 {
		t.Errorf("order must not be stored, got %d", len(store.created))
	}
}

func TestCreateRejectsUnknownItem(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	svc := NewOrderService(&fakeOrderStore{}, fakeCatalog{}, &fakeSnapshots{}, &fakeTenantSource{}, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), tenantID, orderRequest(dto.OrderLineRequest{MenuItemID: uuid.NewString(), Quantity: 1}), now)
	if code := appErrCode(t, err); code != apperrors.ErrNotFound {
		t.Errorf("expected %s, got %s", apperrors.ErrNotFound, code)
	}
}

func TestCreateTotalsFromStoredPrices(t *testing.T) {
	tenantID := uuid.New()
	slotID := uuid.New()
	schnitzelID := uuid.New()
	colaID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	open := menuEntity.Restrictions{slotID.String(): true}

	store := &fakeOrderStore{}
	svc := NewOrderService(
		store,
		fakeCatalog{
			schnitzelID: catalogItem(schnitzelID, "Schnitzel", "Wiener Schnitzel", 18.50, true, open),
			colaID:      catalogItem(colaID, "Cola", "", 3.90, true, open),
		},
		&fakeSnapshots{slots: []tsEntity.TimeSlot{lunchSlot(slotID, nil)}},
		&fakeTenantSource{},
		&fakeEnqueuer{},
	)

	order, err := svc.Create(context.Background(), tenantID, orderRequest(
		dto.OrderLineRequest{MenuItemID: schnitzelID.String(), Quantity: 1},
		dto.OrderLineRequest{MenuItemID: colaID.String(), Quantity: 2},
	), now)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := 1*18.50 + 2*3.90
	if math.Abs(order.Total-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", order.Total, want)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Items))
	}
	if order.Items[0].Name != "Wiener Schnitzel" {
		t.Errorf("line name should prefer the German name, got %q", order.Items[0].Name)
	}
	if order.Items[1].Name != "Cola" {
		t.Errorf("line name should fall back to the English name, got %q", order.Items[1].Name)
	}
	if order.Items[1].PriceAtTime != 3.90 {
		t.Errorf("PriceAtTime = %v, want 3.90", order.Items[1].PriceAtTime)
	}
	if order.Status != entity.StatusNew {
		t.Errorf("Status = %s, want %s", order.Status, entity.StatusNew)
	}
	if order.OrderNumber == "" {
		t.Error("OrderNumber must be assigned")
	}
	if len(store.created) != 1 {
		t.Errorf("expected 1 stored order, got %d", len(store.created))
	}
}

func TestCreateNotifiesActiveSlotStaffNumber(t *testing.T) {
	tenantID := uuid.New()
	slotID := uuid.New()
	itemID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	staff := "+491511111111"

	tenant := &tenantEntity.Tenant{Name: "Hotel Alpenblick"}
	tenant.ID = tenantID
	tenant.Settings.ContactInfo.Phone = "+491522222222"

	queue := &fakeEnqueuer{}
	svc := NewOrderService(
		&fakeOrderStore{},
		fakeCatalog{itemID: catalogItem(itemID, "Schnitzel", "", 18.50, true, menuEntity.Restrictions{slotID.String(): true})},
		&fakeSnapshots{slots: []tsEntity.TimeSlot{lunchSlot(slotID, &staff)}},
		&fakeTenantSource{tenant: tenant},
		queue,
	)

	if _, err := svc.Create(context.Background(), tenantID, orderRequest(dto.OrderLineRequest{MenuItemID: itemID.String(), Quantity: 1}), now); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(queue.tasks) != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", len(queue.tasks))
	}
	var payload notify.OrderSMSPayload
	if err := json.Unmarshal(queue.tasks[0].Payload(), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Recipient != staff {
		t.Errorf("Recipient = %q, want the active slot's staff number %q", payload.Recipient, staff)
	}
	if payload.RoomNumber != "204" || payload.Location != "room" {
		t.Errorf("payload location = %q/%q, want room/204", payload.Location, payload.RoomNumber)
	}
}

func TestCreateNotificationFallsBackToTenantPhone(t *testing.T) {
	tenantID := uuid.New()
	slotID := uuid.New()
	itemID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	tenant := &tenantEntity.Tenant{Name: "Hotel Alpenblick"}
	tenant.ID = tenantID
	tenant.Settings.ContactInfo.Phone = "+491522222222"

	queue := &fakeEnqueuer{}
	svc := NewOrderService(
		&fakeOrderStore{},
		fakeCatalog{itemID: catalogItem(itemID, "Schnitzel", "", 18.50, true, menuEntity.Restrictions{slotID.String(): true})},
		&fakeSnapshots{slots: []tsEntity.TimeSlot{lunchSlot(slotID, nil)}},
		&fakeTenantSource{tenant: tenant},
		queue,
	)

	if _, err := svc.Create(context.Background(), tenantID, orderRequest(dto.OrderLineRequest{MenuItemID: itemID.String(), Quantity: 1}), now); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(queue.tasks) != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", len(queue.tasks))
	}
	var payload notify.OrderSMSPayload
	if err := json.Unmarshal(queue.tasks[0].Payload(), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Recipient != "+491522222222" {
		t.Errorf("Recipient = %q, want the tenant contact phone", payload.Recipient)
	}
}
