package service

import (
	"context"
	"fmt"
	"io"
	"time"

	coreEntity "guest-order-api/core/entity"
	"guest-order-api/core/errors"
	"guest-order-api/core/logger"
	"guest-order-api/core/storage"
	"guest-order-api/core/utils"
	"guest-order-api/modules/menu/dto"
	"guest-order-api/modules/menu/entity"
	"guest-order-api/modules/menu/repository"
	tsService "guest-order-api/modules/timeslot/service"

	"github.com/google/uuid"
)

type MenuService struct {
	items    *repository.MenuRepository
	specials *repository.SpecialRepository
	slots    *tsService.WatcherRegistry
	uploader *storage.Uploader
}

func NewMenuService(
	items *repository.MenuRepository,
	specials *repository.SpecialRepository,
	slots *tsService.WatcherRegistry,
	uploader *storage.Uploader,
) *MenuService {
	return &MenuService{
		items:    items,
		specials: specials,
		slots:    slots,
		uploader: uploader,
	}
}

// GetGuestMenu assembles the grouped, availability-decorated menu a guest
// sees. If no category is requested it defaults to the current one derived
// from the wall clock.
func (s *MenuService) GetGuestMenu(ctx context.Context, tenantID uuid.UUID, category entity.Category, searchTerm, subCategory string, now time.Time) (*dto.GuestMenuResponse, error) {
	current := CurrentMenuCategory(now)
	if category == "" {
		category = current
	}

	items, err := s.items.ListByCategory(ctx, tenantID, category)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load menu", nil)
	}

	slots, err := s.slots.SnapshotFor(ctx, tenantID)
	if err != nil {
		// Fail closed: with no slot snapshot nothing is orderable, but the
		// menu itself stays browsable.
		logger.Warn("MenuService:GetGuestMenu:SnapshotError", "tenant_id", tenantID, "error", err)
		slots = nil
	}

	return &dto.GuestMenuResponse{
		Category:        category,
		CurrentCategory: current,
		Groups:          FilterAndGroup(items, category, searchTerm, subCategory, slots, now),
	}, nil
}

// GetCurrentSpecials returns specials inside their validity window, each
// decorated with instant orderability.
func (s *MenuService) GetCurrentSpecials(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]dto.SpecialView, error) {
	specials, err := s.specials.ListCurrent(ctx, tenantID, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load specials", nil)
	}

	slots, err := s.slots.SnapshotFor(ctx, tenantID)
	if err != nil {
		logger.Warn("MenuService:GetCurrentSpecials:SnapshotError", "tenant_id", tenantID, "error", err)
		slots = nil
	}

	views := make([]dto.SpecialView, 0, len(specials))
	for _, sp := range specials {
		views = append(views, dto.SpecialView{
			DailySpecial: sp,
			Orderable:    IsOrderable(sp.TimeRestrictions, slots, now),
		})
	}
	return views, nil
}

func (s *MenuService) GetItem(ctx context.Context, tenantID, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.items.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "menu item not found", nil)
	}
	return item, nil
}

func (s *MenuService) ListItems(ctx context.Context, tenantID uuid.UUID) ([]entity.MenuItem, error) {
	return s.items.ListAll(ctx, tenantID)
}

func (s *MenuService) CreateItem(ctx context.Context, tenantID uuid.UUID, req *dto.CreateMenuItemRequest) (*entity.MenuItem, error) {
	item := itemFromRequest(tenantID, req)
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if err := s.items.Create(ctx, item); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create menu item", nil)
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, tenantID, id uuid.UUID, req *dto.UpdateMenuItemRequest) (*entity.MenuItem, error) {
	existing, err := s.items.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "menu item not found", nil)
	}

	item := itemFromRequest(tenantID, req)
	item.BaseEntity = existing.BaseEntity
	item.UpdatedAt = time.Now()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update menu item", nil)
	}
	return item, nil
}

// DeleteItem refuses to remove items that appear in existing orders.
func (s *MenuService) DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.items.GetByID(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrNotFound, "menu item not found", nil)
	}

	referenced, err := s.items.IsReferencedByOrders(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to check item references", nil)
	}
	if referenced {
		return errors.NewAppError(errors.ErrItemInUse, "item is used by existing orders and cannot be deleted", nil)
	}

	if err := s.items.Delete(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete menu item", nil)
	}
	return nil
}

func (s *MenuService) ListSpecials(ctx context.Context, tenantID uuid.UUID) ([]entity.DailySpecial, error) {
	return s.specials.ListAll(ctx, tenantID)
}

func (s *MenuService) CreateSpecial(ctx context.Context, tenantID uuid.UUID, req *dto.CreateSpecialRequest) (*entity.DailySpecial, error) {
	if req.ValidUntil.Before(req.ValidFrom) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "valid_until must not precede valid_from", nil)
	}

	special := specialFromRequest(tenantID, req)
	special.CreatedAt = time.Now()
	special.UpdatedAt = time.Now()

	if err := s.specials.Create(ctx, special); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create special", nil)
	}
	return special, nil
}

func (s *MenuService) UpdateSpecial(ctx context.Context, tenantID, id uuid.UUID, req *dto.UpdateSpecialRequest) (*entity.DailySpecial, error) {
	if req.ValidUntil.Before(req.ValidFrom) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "valid_until must not precede valid_from", nil)
	}

	existing, err := s.specials.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "special not found", nil)
	}

	special := specialFromRequest(tenantID, req)
	special.BaseEntity = existing.BaseEntity
	special.UpdatedAt = time.Now()

	if err := s.specials.Update(ctx, special); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update special", nil)
	}
	return special, nil
}

func (s *MenuService) DeleteSpecial(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.specials.GetByID(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrNotFound, "special not found", nil)
	}
	if err := s.specials.Delete(ctx, tenantID, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete special", nil)
	}
	return nil
}

// CopySpecial duplicates a special with a "(Kopie)" suffix and a fresh
// today-to-tomorrow validity window.
func (s *MenuService) CopySpecial(ctx context.Context, tenantID, id uuid.UUID) (*entity.DailySpecial, error) {
	original, err := s.specials.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "special not found", nil)
	}

	copied := *original
	copied.BaseEntity = coreEntity.BaseEntity{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	copied.Name = original.Name + " (Kopie)"
	copied.NameDE = original.NameDE + " (Kopie)"
	copied.ValidFrom = time.Now()
	copied.ValidUntil = time.Now().Add(24 * time.Hour)

	if err := s.specials.Create(ctx, &copied); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to copy special", nil)
	}
	return &copied, nil
}

// UploadImage stores a menu or special image and returns its public URL.
func (s *MenuService) UploadImage(ctx context.Context, tenantID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "image storage is not configured", nil)
	}

	key := fmt.Sprintf("tenants/%s/menu/%s-%s", tenantID, utils.GenerateID(), filename)
	url, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to upload image", nil)
	}
	return url, nil
}

func itemFromRequest(tenantID uuid.UUID, req *dto.CreateMenuItemRequest) *entity.MenuItem {
	var beverage *entity.BeverageCategory
	if req.BeverageCategory != nil {
		b := entity.BeverageCategory(*req.BeverageCategory)
		beverage = &b
	}
	return &entity.MenuItem{
		TenantID:         tenantID,
		Name:             req.Name,
		NameDE:           req.NameDE,
		Description:      req.Description,
		Price:            req.Price,
		Category:         entity.Category(req.Category),
		MenuCategory:     entity.MenuCategory(req.MenuCategory),
		BeverageCategory: beverage,
		ImageURL:         req.ImageURL,
		Available:        req.Available,
		TimeRestrictions: req.TimeRestrictions,
	}
}

func specialFromRequest(tenantID uuid.UUID, req *dto.CreateSpecialRequest) *entity.DailySpecial {
	return &entity.DailySpecial{
		TenantID:         tenantID,
		Name:             req.Name,
		NameDE:           req.NameDE,
		Description:      req.Description,
		Price:            req.Price,
		SpecialType:      entity.SpecialType(req.SpecialType),
		ImageURL:         req.ImageURL,
		HighlightColor:   req.HighlightColor,
		ValidFrom:        req.ValidFrom,
		ValidUntil:       req.ValidUntil,
		TimeRestrictions: req.TimeRestrictions,
	}
}
