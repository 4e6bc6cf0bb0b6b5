package service

import (
	"context"
	"time"

	"guest-order-api/core/constants"
	"guest-order-api/core/errors"
	"guest-order-api/core/logger"
	"guest-order-api/core/middleware"
	"guest-order-api/core/utils"
	"guest-order-api/modules/auth/dto"
	"guest-order-api/modules/auth/entity"
	"guest-order-api/modules/notify"
	tenantEntity "guest-order-api/modules/tenant/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the account persistence surface. Implemented by
// repository.UserRepository.
type UserStore interface {
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.TenantUser, error)
	GetByVerificationToken(ctx context.Context, token string) (*entity.TenantUser, error)
	Create(ctx context.Context, user *entity.TenantUser) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

// TenantDirectory covers the tenant lifecycle steps signup and signin need.
type TenantDirectory interface {
	Provision(ctx context.Context, name string) (*tenantEntity.Tenant, error)
	Activate(ctx context.Context, id uuid.UUID) error
	ResolveBySubdomain(ctx context.Context, subdomain string) (*middleware.TenantContext, error)
}

// SlotProvisioner seeds the default time slot set for a fresh tenant.
type SlotProvisioner interface {
	ProvisionDefaults(ctx context.Context, tenantID uuid.UUID) error
}

// Enqueuer is the background task client. Implemented by asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AuthService struct {
	users   UserStore
	tenants TenantDirectory
	slots   SlotProvisioner
	queue   Enqueuer
}

func NewAuthService(users UserStore, tenants TenantDirectory, slots SlotProvisioner, queue Enqueuer) *AuthService {
	return &AuthService{users: users, tenants: tenants, slots: slots, queue: queue}
}

// Signup provisions an inactive tenant plus its owner account and mails a
// verification link. Nothing is usable until the link is followed.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	tenant, err := s.tenants.Provision(ctx, req.HotelName)
	if err != nil {
		return nil, err
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), constants.BcryptCost)
	if hashErr != nil {
		logger.Error("AuthService:Signup:HashError", "error", hashErr)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", nil)
	}

	token := utils.GenerateRandomString(constants.VerificationTokenLength)
	expiry := time.Now().Add(constants.VerificationTokenExpiryHours * time.Hour)

	user := &entity.TenantUser{
		TenantID:                   tenant.ID,
		Email:                      req.Email,
		PasswordHash:               string(hash),
		Role:                       entity.RoleOwner,
		Verified:                   false,
		VerificationToken:          &token,
		VerificationTokenExpiresAt: &expiry,
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create account", nil)
	}

	task, taskErr := notify.NewVerificationEmailTask(notify.VerificationEmailPayload{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
		Email:      user.Email,
		Token:      token,
	})
	if taskErr == nil {
		if _, enqErr := s.queue.EnqueueContext(ctx, task); enqErr != nil {
			logger.Error("AuthService:Signup:EnqueueError", "email", user.Email, "error", enqErr)
		}
	}

	return &dto.SignupResponse{
		TenantID:  tenant.ID.String(),
		Subdomain: tenant.Subdomain,
		Email:     user.Email,
	}, nil
}

// Verify consumes a verification token: it marks the owner verified, activates
// the tenant and seeds the default time slot set.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	user, err := s.users.GetByVerificationToken(ctx, token)
	if err != nil {
		return errors.NewAppError(errors.ErrNotFound, "invalid verification token", nil)
	}
	if user.VerificationTokenExpiresAt == nil || time.Now().After(*user.VerificationTokenExpiresAt) {
		return errors.NewAppError(errors.ErrTokenExpired, "verification token has expired", nil)
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to verify account", nil)
	}
	if err := s.tenants.Activate(ctx, user.TenantID); err != nil {
		return err
	}

	if err := s.slots.ProvisionDefaults(ctx, user.TenantID); err != nil {
		// The tenant is live; missing defaults only leave the menu
		// non-orderable until slots are configured by hand.
		logger.Error("AuthService:Verify:ProvisionDefaultsError", "tenant_id", user.TenantID, "error", err)
	}

	return nil
}

// Signin authenticates a verified admin within their tenant and issues a JWT.
func (s *AuthService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.SigninResponse, error) {
	tenant, err := s.tenants.ResolveBySubdomain(ctx, req.Subdomain)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	user, err := s.users.GetByEmail(ctx, tenant.ID, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}
	if !user.Verified {
		return nil, errors.NewAppError(errors.ErrNotVerified, "email address is not verified", nil)
	}

	accessToken, tokenErr := utils.GenerateToken(user.ID, user.TenantID, user.Role)
	if tokenErr != nil {
		logger.Error("AuthService:Signin:GenerateTokenError", "error", tokenErr)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", nil)
	}

	return &dto.SigninResponse{
		AccessToken: accessToken,
		Role:        user.Role,
		TenantID:    user.TenantID.String(),
		Subdomain:   tenant.Subdomain,
	}, nil
}
