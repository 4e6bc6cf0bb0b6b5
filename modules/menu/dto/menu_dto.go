package dto

import (
	"time"

	"guest-order-api/modules/menu/entity"
)

type CreateMenuItemRequest struct {
	Name             string              `json:"name" validate:"required,max=200"`
	NameDE           string              `json:"name_de" validate:"required,max=200"`
	Description      string              `json:"description" validate:"max=2000"`
	Price            float64             `json:"price" validate:"gte=0"`
	Category         string              `json:"category" validate:"required,oneof=breakfast lunch dinner drinks"`
	MenuCategory     string              `json:"menu_category" validate:"required,oneof=starters mains desserts snacks beverages"`
	BeverageCategory *string             `json:"beverage_category" validate:"omitempty,oneof=soft_drinks hot_drinks cocktails wine beer spirits"`
	ImageURL         *string             `json:"image_url" validate:"omitempty,url"`
	Available        bool                `json:"available"`
	TimeRestrictions entity.Restrictions `json:"time_restrictions"`
}

type UpdateMenuItemRequest = CreateMenuItemRequest

type CreateSpecialRequest struct {
	Name             string              `json:"name" validate:"required,max=200"`
	NameDE           string              `json:"name_de" validate:"required,max=200"`
	Description      string              `json:"description" validate:"max=2000"`
	Price            float64             `json:"price" validate:"gte=0"`
	SpecialType      string              `json:"special_type" validate:"required,oneof=food drinks spa"`
	ImageURL         *string             `json:"image_url" validate:"omitempty,url"`
	HighlightColor   *string             `json:"highlight_color" validate:"omitempty,hexcolor"`
	ValidFrom        time.Time           `json:"valid_from" validate:"required"`
	ValidUntil       time.Time           `json:"valid_until" validate:"required"`
	TimeRestrictions entity.Restrictions `json:"time_restrictions"`
}

type UpdateSpecialRequest = CreateSpecialRequest

// GuestMenuResponse is the grouped, availability-decorated menu for guests.
type GuestMenuResponse struct {
	Category        entity.Category    `json:"category"`
	CurrentCategory entity.Category    `json:"current_category"`
	Groups          []entity.ItemGroup `json:"groups"`
}

// SpecialView decorates a special with its instant orderability.
type SpecialView struct {
	entity.DailySpecial
	Orderable bool `json:"orderable"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
