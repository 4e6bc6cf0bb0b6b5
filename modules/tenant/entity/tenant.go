package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	coreEntity "guest-order-api/core/entity"
)

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierBasic      SubscriptionTier = "basic"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

// TierLimits caps per-tenant resources by subscription tier.
type TierLimits struct {
	MaxMenuItems int `json:"max_menu_items"`
	MaxAdmins    int `json:"max_admins"`
	MaxOrdersDay int `json:"max_orders_per_day"`
}

// TierCatalog is the fixed limit table per tier. -1 means unlimited.
var TierCatalog = map[SubscriptionTier]TierLimits{
	TierFree:       {MaxMenuItems: 25, MaxAdmins: 1, MaxOrdersDay: 50},
	TierBasic:      {MaxMenuItems: 100, MaxAdmins: 3, MaxOrdersDay: 250},
	TierPremium:    {MaxMenuItems: 500, MaxAdmins: 10, MaxOrdersDay: 1000},
	TierEnterprise: {MaxMenuItems: -1, MaxAdmins: -1, MaxOrdersDay: -1},
}

func (t SubscriptionTier) Valid() bool {
	_, ok := TierCatalog[t]
	return ok
}

// Features toggles guest-facing service areas per tenant.
type Features struct {
	RoomService bool `json:"room_service"`
	PoolService bool `json:"pool_service"`
	BarService  bool `json:"bar_service"`
	SpaServices bool `json:"spa_services"`
	Preorders   bool `json:"preorders"`
}

type Theme struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
}

type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Settings is stored as a single JSONB column.
type Settings struct {
	Theme         Theme             `json:"theme"`
	BusinessHours map[string]string `json:"business_hours,omitempty"`
	ContactInfo   ContactInfo       `json:"contact_info"`
	Features      Features          `json:"features"`
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported settings type %T", src)
	}
}

type Tenant struct {
	Name             string           `db:"name" json:"name"`
	Subdomain        string           `db:"subdomain" json:"subdomain"`
	Settings         Settings         `db:"settings" json:"settings"`
	SubscriptionTier SubscriptionTier `db:"subscription_tier" json:"subscription_tier"`
	Active           bool             `db:"active" json:"active"`
	coreEntity.BaseEntity
}

// Limits returns the caps for the tenant's tier.
func (t *Tenant) Limits() TierLimits {
	if limits, ok := TierCatalog[t.SubscriptionTier]; ok {
		return limits
	}
	return TierCatalog[TierFree]
}
