package dto

import "guest-order-api/modules/tenant/entity"

type UpdateSettingsRequest struct {
	Settings entity.Settings `json:"settings" validate:"required"`
}

type ChangeTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free basic premium enterprise"`
}

// PublicTenantResponse is the storefront configuration exposed without auth.
type PublicTenantResponse struct {
	Name      string            `json:"name"`
	Subdomain string            `json:"subdomain"`
	Theme     entity.Theme      `json:"theme"`
	Contact   entity.ContactInfo `json:"contact_info"`
	Features  entity.Features   `json:"features"`
}
