package service

import (
	"context"
	"time"

	"guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/tenant/dto"
	"guest-order-api/modules/tenant/entity"
	"guest-order-api/modules/tenant/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type TenantService struct {
	repo *repository.TenantRepository
}

func NewTenantService(repo *repository.TenantRepository) *TenantService {
	return &TenantService{repo: repo}
}

// ResolveBySubdomain implements middleware.TenantResolver.
func (s *TenantService) ResolveBySubdomain(ctx context.Context, subdomain string) (*middleware.TenantContext, error) {
	tenant, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrTenantNotFound, "tenant not found", nil)
	}
	return &middleware.TenantContext{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Active:    tenant.Active,
	}, nil
}

// Provision creates an inactive tenant for a fresh signup. The subdomain is
// slugified from the hotel name; a taken subdomain surfaces as a conflict.
func (s *TenantService) Provision(ctx context.Context, name string) (*entity.Tenant, error) {
	subdomain := slug.Make(name)
	if subdomain == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "hotel name yields an empty subdomain", nil)
	}

	if _, err := s.repo.GetBySubdomain(ctx, subdomain); err == nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "subdomain already taken", map[string]string{"subdomain": subdomain})
	}

	tenant := &entity.Tenant{
		Name:             name,
		Subdomain:        subdomain,
		SubscriptionTier: entity.TierFree,
		Settings: entity.Settings{
			Features: entity.Features{
				RoomService: true,
				BarService:  true,
			},
		},
		Active: false,
	}
	tenant.CreatedAt = time.Now()
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create tenant", nil)
	}
	return tenant, nil
}

// Activate flips a tenant live, called after its owner verifies their email.
func (s *TenantService) Activate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, id, true); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to activate tenant", nil)
	}
	return nil
}

func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrTenantNotFound, "tenant not found", nil)
	}
	return tenant, nil
}

func (s *TenantService) List(ctx context.Context) ([]entity.Tenant, error) {
	return s.repo.List(ctx)
}

// PublicConfig is the storefront view of a tenant, safe to serve without auth.
func (s *TenantService) PublicConfig(ctx context.Context, id uuid.UUID) (*dto.PublicTenantResponse, error) {
	tenant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PublicTenantResponse{
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Theme:     tenant.Settings.Theme,
		Contact:   tenant.Settings.ContactInfo,
		Features:  tenant.Settings.Features,
	}, nil
}

func (s *TenantService) UpdateSettings(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*entity.Tenant, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSettings(ctx, id, req.Settings); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update settings", nil)
	}
	return s.Get(ctx, id)
}

func (s *TenantService) ChangeTier(ctx context.Context, id uuid.UUID, req *dto.ChangeTierRequest) (*entity.Tenant, error) {
	tier := entity.SubscriptionTier(req.Tier)
	if !tier.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown subscription tier", nil)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTier(ctx, id, tier); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to change tier", nil)
	}
	return s.Get(ctx, id)
}
