package entity

import (
	"time"

	coreEntity "guest-order-api/core/entity"

	"github.com/google/uuid"
)

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type TenantUser struct {
	TenantID                   uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Email                      string     `db:"email" json:"email"`
	PasswordHash               string     `db:"password_hash" json:"-"`
	Role                       string     `db:"role" json:"role"`
	Verified                   bool       `db:"verified" json:"verified"`
	VerificationToken          *string    `db:"verification_token" json:"-"`
	VerificationTokenExpiresAt *time.Time `db:"verification_token_expires_at" json:"-"`
	coreEntity.BaseEntity
}
