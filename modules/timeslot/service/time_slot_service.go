package service

import (
	"context"
	"time"

	coreEntity "guest-order-api/core/entity"
	"guest-order-api/core/errors"
	"guest-order-api/core/logger"
	"guest-order-api/modules/timeslot/dto"
	"guest-order-api/modules/timeslot/entity"
	"guest-order-api/modules/timeslot/repository"

	"github.com/google/uuid"
)

type TimeSlotService struct {
	repo *repository.TimeSlotRepository
}

func NewTimeSlotService(repo *repository.TimeSlotRepository) *TimeSlotService {
	return &TimeSlotService{repo: repo}
}

func (s *TimeSlotService) List(ctx context.Context, tenantID uuid.UUID) ([]entity.TimeSlot, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *TimeSlotService) Create(ctx context.Context, tenantID uuid.UUID, req *dto.CreateTimeSlotRequest) (*entity.TimeSlot, error) {
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot := &entity.TimeSlot{
		TenantID:                tenantID,
		Label:                   req.Label,
		StartTime:               normalizeTime(req.StartTime),
		EndTime:                 normalizeTime(req.EndTime),
		IsDrinks:                req.IsDrinks,
		StaffNotificationNumber: req.StaffNotificationNumber,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create time slot", nil)
	}
	return slot, nil
}

func (s *TimeSlotService) Update(ctx context.Context, tenantID, id uuid.UUID, req *dto.UpdateTimeSlotRequest) (*entity.TimeSlot, error) {
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "time slot not found", nil)
	}

	slot.Label = req.Label
	slot.StartTime = normalizeTime(req.StartTime)
	slot.EndTime = normalizeTime(req.EndTime)
	slot.IsDrinks = req.IsDrinks
	slot.StaffNotificationNumber = req.StaffNotificationNumber
	slot.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update time slot", nil)
	}
	return slot, nil
}

func (s *TimeSlotService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrNotFound, "time slot not found", nil)
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete time slot", nil)
	}
	return nil
}

// ProvisionDefaults creates the starter slot set for a freshly verified
// tenant: breakfast, lunch, dinner and an all-day drinks window.
func (s *TimeSlotService) ProvisionDefaults(ctx context.Context, tenantID uuid.UUID) error {
	defaults := []entity.TimeSlot{
		{TenantID: tenantID, Label: "Breakfast", StartTime: "07:00:00", EndTime: "11:00:00", IsDrinks: false},
		{TenantID: tenantID, Label: "Lunch", StartTime: "11:00:00", EndTime: "15:00:00", IsDrinks: false},
		{TenantID: tenantID, Label: "Dinner", StartTime: "17:00:00", EndTime: "22:00:00", IsDrinks: false},
		{TenantID: tenantID, Label: "Drinks", StartTime: "11:00:00", EndTime: "22:00:00", IsDrinks: true},
	}

	for i := range defaults {
		defaults[i].CreatedAt = time.Now()
		defaults[i].UpdatedAt = time.Now()
		if err := s.repo.Create(ctx, &defaults[i]); err != nil {
			logger.Error("TimeSlotService:ProvisionDefaults:Error", "tenant_id", tenantID, "label", defaults[i].Label, "error", err)
			return err
		}
	}

	logger.Info("TimeSlotService:ProvisionDefaults:Done", "tenant_id", tenantID, "count", len(defaults))
	return nil
}

// validateWindow rejects unparseable times and windows that would wrap past
// midnight. The availability check treats start > end as an empty range, so
// an overnight window could never match; refusing it here keeps admins from
// configuring a slot that silently never opens.
func validateWindow(start, end string) error {
	startMin, ok := entity.ParseMinutes(start)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "start_time must be HH:MM or HH:MM:SS", nil)
	}
	endMin, ok := entity.ParseMinutes(end)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "end_time must be HH:MM or HH:MM:SS", nil)
	}
	if startMin > endMin {
		return errors.NewAppError(errors.ErrInvalidInput, "time slots may not cross midnight", nil)
	}
	return nil
}

// normalizeTime stores times in the canonical HH:MM:SS form.
func normalizeTime(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}
