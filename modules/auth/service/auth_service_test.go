package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	apperrors "guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/auth/dto"
	"guest-order-api/modules/auth/entity"
	"guest-order-api/modules/notify"
	tenantEntity "guest-order-api/modules/tenant/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	created  *entity.TenantUser
	byEmail  map[string]*entity.TenantUser
	byToken  map[string]*entity.TenantUser
	verified []uuid.UUID
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.TenantUser, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("no user %s", email)
	}
	return user, nil
}

func (f *fakeUserStore) GetByVerificationToken(ctx context.Context, token string) (*entity.TenantUser, error) {
	user, ok := f.byToken[token]
	if !ok {
		return nil, fmt.Errorf("unknown token")
	}
	return user, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *entity.TenantUser) error {
	user.ID = uuid.New()
	f.created = user
	return nil
}

func (f *fakeUserStore) MarkVerified(ctx context.Context, id uuid.UUID) error {
	f.verified = append(f.verified, id)
	return nil
}

type fakeTenantDirectory struct {
	tenant    *tenantEntity.Tenant
	resolved  *middleware.TenantContext
	activated []uuid.UUID
}

func (f *fakeTenantDirectory) Provision(ctx context.Context, name string) (*tenantEntity.Tenant, error) {
	if f.tenant == nil {
		return nil, fmt.Errorf("provisioning unavailable")
	}
	return f.tenant, nil
}

func (f *fakeTenantDirectory) Activate(ctx context.Context, id uuid.UUID) error {
	f.activated = append(f.activated, id)
	return nil
}

func (f *fakeTenantDirectory) ResolveBySubdomain(ctx context.Context, subdomain string) (*middleware.TenantContext, error) {
	if f.resolved == nil {
		return nil, fmt.Errorf("no tenant for %q", subdomain)
	}
	return f.resolved, nil
}

type fakeSlotProvisioner struct {
	seeded []uuid.UUID
}

func (f *fakeSlotProvisioner) ProvisionDefaults(ctx context.Context, tenantID uuid.UUID) error {
	f.seeded = append(f.seeded, tenantID)
	return nil
}

type fakeTaskQueue struct {
	tasks []*asynq.Task
}

func (f *fakeTaskQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func testTenant() *tenantEntity.Tenant {
	tenant := &tenantEntity.Tenant{Name: "Hotel Alpenblick", Subdomain: "hotel-alpenblick"}
	tenant.ID = uuid.New()
	return tenant
}

func authErrCode(t *testing.T, err error) apperrors.ErrorCode {
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

func TestSignupHashesPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := NewAuthService(users, &fakeTenantDirectory{tenant: testTenant()}, &fakeSlotProvisioner{}, &fakeTaskQueue{})

	const password = "super-secret-pw"
	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{HotelName: "Hotel Alpenblick", Email: "owner@example.com", Password: password})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if users.created == nil {
		t.Fatal("no account was created")
	}
	if users.created.PasswordHash == password {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte(password)) != nil {
		t.Error("stored hash does not verify against the password")
	}
	if bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("wrong")) == nil {
		t.Error("stored hash verifies against a wrong password")
	}
	if users.created.Role != entity.RoleOwner {
		t.Errorf("Role = %q, want %q", users.created.Role, entity.RoleOwner)
	}
	if users.created.Verified {
		t.Error("fresh account must not be verified")
	}
	if resp.Subdomain != "hotel-alpenblick" {
		t.Errorf("Subdomain = %q", resp.Subdomain)
	}
}

func TestSignupSetsVerificationTokenAndExpiry(t *testing.T) {
	users := &fakeUserStore{}
	queue := &fakeTaskQueue{}
	svc := NewAuthService(users, &fakeTenantDirectory{tenant: testTenant()}, &fakeSlotProvisioner{}, queue)

	before := time.Now()
	if _, err := svc.Signup(context.Background(), &dto.SignupRequest{HotelName: "Hotel Alpenblick", Email: "owner@example.com", Password: "super-secret-pw"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if users.created.VerificationToken == nil || *users.created.VerificationToken == "" {
		t.Fatal("no verification token issued")
	}
	if users.created.VerificationTokenExpiresAt == nil {
		t.Fatal("no token expiry set")
	}
	expiry := *users.created.VerificationTokenExpiresAt
	if expiry.Before(before.Add(23*time.Hour)) || expiry.After(before.Add(25*time.Hour)) {
		t.Errorf("expiry %v not roughly 24h out", expiry)
	}

	if len(queue.tasks) != 1 {
		t.Fatalf("expected 1 enqueued mail task, got %d", len(queue.tasks))
	}
	var payload notify.VerificationEmailPayload
	if err := json.Unmarshal(queue.tasks[0].Payload(), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Token != *users.created.VerificationToken {
		t.Error("mailed token differs from the stored token")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	token := "stale"
	user := &entity.TenantUser{TenantID: uuid.New(), VerificationToken: &token, VerificationTokenExpiresAt: &expired}
	user.ID = uuid.New()

	users := &fakeUserStore{byToken: map[string]*entity.TenantUser{token: user}}
	dir := &fakeTenantDirectory{}
	svc := NewAuthService(users, dir, &fakeSlotProvisioner{}, &fakeTaskQueue{})

	err := svc.Verify(context.Background(), token)
	if code := authErrCode(t, err); code != apperrors.ErrTokenExpired {
		t.Errorf("expected %s, got %s", apperrors.ErrTokenExpired, code)
	}
	if len(users.verified) != 0 {
		t.Error("expired token must not verify the account")
	}
	if len(dir.activated) != 0 {
		t.Error("expired token must not activate the tenant")
	}
}

func TestVerifyActivatesTenantAndSeedsDefaults(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	token := "fresh"
	user := &entity.TenantUser{TenantID: uuid.New(), VerificationToken: &token, VerificationTokenExpiresAt: &expiry}
	user.ID = uuid.New()

	users := &fakeUserStore{byToken: map[string]*entity.TenantUser{token: user}}
	dir := &fakeTenantDirectory{}
	slots := &fakeSlotProvisioner{}
	svc := NewAuthService(users, dir, slots, &fakeTaskQueue{})

	if err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(users.verified) != 1 || users.verified[0] != user.ID {
		t.Error("account was not marked verified")
	}
	if len(dir.activated) != 1 || dir.activated[0] != user.TenantID {
		t.Error("tenant was not activated")
	}
	if len(slots.seeded) != 1 || slots.seeded[0] != user.TenantID {
		t.Error("default time slots were not provisioned")
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	tenantID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	verified := &entity.TenantUser{TenantID: tenantID, Email: "owner@example.com", PasswordHash: string(hash), Role: entity.RoleOwner, Verified: true}
	verified.ID = uuid.New()
	unverified := &entity.TenantUser{TenantID: tenantID, Email: "new@example.com", PasswordHash: string(hash), Role: entity.RoleOwner, Verified: false}
	unverified.ID = uuid.New()

	users := &fakeUserStore{byEmail: map[string]*entity.TenantUser{verified.Email: verified, unverified.Email: unverified}}
	dir := &fakeTenantDirectory{resolved: &middleware.TenantContext{ID: tenantID, Subdomain: "hotel-alpenblick", Active: true}}
	svc := NewAuthService(users, dir, &fakeSlotProvisioner{}, &fakeTaskQueue{})

	cases := []struct {
		name string
		req  dto.SigninRequest
		want apperrors.ErrorCode
	}{
		{"wrong password", dto.SigninRequest{Subdomain: "hotel-alpenblick", Email: verified.Email, Password: "wrong"}, apperrors.ErrUnauthorized},
		{"unknown email", dto.SigninRequest{Subdomain: "hotel-alpenblick", Email: "ghost@example.com", Password: "right-password"}, apperrors.ErrUnauthorized},
		{"unverified account", dto.SigninRequest{Subdomain: "hotel-alpenblick", Email: unverified.Email, Password: "right-password"}, apperrors.ErrNotVerified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signin(context.Background(), &tc.req)
			if code := authErrCode(t, err); code != tc.want {
				t.Errorf("expected %s, got %s", tc.want, code)
			}
		})
	}
}
