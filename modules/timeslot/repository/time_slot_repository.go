package repository

import (
	"context"

	"guest-order-api/core/cache"
	"guest-order-api/core/constants"
	"guest-order-api/core/database"
	"guest-order-api/core/logger"
	"guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

type TimeSlotRepository struct {
	db    database.IDatabase
	cache cache.Cache
}

func NewTimeSlotRepository(db database.IDatabase, cache cache.Cache) *TimeSlotRepository {
	return &TimeSlotRepository{db: db, cache: cache}
}

// ListByTenant returns the tenant's slots ordered by start time. An empty
// result is not an error; consumers then treat every item as non-orderable.
func (r *TimeSlotRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.TimeSlot, error) {
	query := `
		SELECT * FROM time_slots
		WHERE tenant_id = $1
		ORDER BY start_time ASC
	`
	slots := []entity.TimeSlot{}
	if err := r.db.SelectContext(ctx, &slots, query, tenantID); err != nil {
		logger.Error("TimeSlotRepository:ListByTenant:Error", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return slots, nil
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.TimeSlot, error) {
	query := `SELECT * FROM time_slots WHERE tenant_id = $1 AND id = $2`
	var slot entity.TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, tenantID, id); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *TimeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	query := `
		INSERT INTO time_slots (tenant_id, label, start_time, end_time, is_drinks, staff_notification_number, created_at, updated_at)
		VALUES (:tenant_id, :label, :start_time, :end_time, :is_drinks, :staff_notification_number, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, slot)
	if err != nil {
		logger.Error("TimeSlotRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&slot.ID); err != nil {
			return err
		}
	}

	r.NotifyChanged(ctx, slot.TenantID)
	return nil
}

func (r *TimeSlotRepository) Update(ctx context.Context, slot *entity.TimeSlot) error {
	query := `
		UPDATE time_slots
		SET label = :label, start_time = :start_time, end_time = :end_time,
		    is_drinks = :is_drinks, staff_notification_number = :staff_notification_number,
		    updated_at = :updated_at
		WHERE tenant_id = :tenant_id AND id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, slot); err != nil {
		logger.Error("TimeSlotRepository:Update:Error", "id", slot.ID, "error", err)
		return err
	}

	r.NotifyChanged(ctx, slot.TenantID)
	return nil
}

func (r *TimeSlotRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE tenant_id = $1 AND id = $2`
	if err := r.db.ExecContext(ctx, query, tenantID, id); err != nil {
		logger.Error("TimeSlotRepository:Delete:Error", "id", id, "error", err)
		return err
	}

	r.NotifyChanged(ctx, tenantID)
	return nil
}

// NotifyChanged publishes a change event for the tenant's slot set. Delivery
// is best effort; a dropped event only delays readers until their next fetch.
func (r *TimeSlotRepository) NotifyChanged(ctx context.Context, tenantID uuid.UUID) {
	channel := constants.TimeSlotChannelPrefix + tenantID.String()
	if err := r.cache.Publish(ctx, channel, "changed"); err != nil {
		logger.Warn("TimeSlotRepository:NotifyChanged:PublishError", "tenant_id", tenantID, "error", err)
	}
}

// Subscribe delivers a signal for every slot change of the tenant. The
// returned cancel function closes the subscription.
func (r *TimeSlotRepository) Subscribe(ctx context.Context, tenantID uuid.UUID) (<-chan string, func()) {
	channel := constants.TimeSlotChannelPrefix + tenantID.String()
	return r.cache.Subscribe(ctx, channel)
}
