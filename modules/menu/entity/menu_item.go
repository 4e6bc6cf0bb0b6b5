package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"guest-order-api/core/entity"

	"github.com/google/uuid"
)

// Category is the meal period an item belongs to.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDrinks    Category = "drinks"
)

// MenuCategory is the finer grouping for food items.
type MenuCategory string

const (
	MenuCategoryStarters  MenuCategory = "starters"
	MenuCategoryMains     MenuCategory = "mains"
	MenuCategoryDesserts  MenuCategory = "desserts"
	MenuCategorySnacks    MenuCategory = "snacks"
	MenuCategoryBeverages MenuCategory = "beverages"
)

// BeverageCategory is the finer grouping for drinks.
type BeverageCategory string

const (
	BeverageSoftDrinks BeverageCategory = "soft_drinks"
	BeverageHotDrinks  BeverageCategory = "hot_drinks"
	BeverageCocktails  BeverageCategory = "cocktails"
	BeverageWine       BeverageCategory = "wine"
	BeverageBeer       BeverageCategory = "beer"
	BeverageSpirits    BeverageCategory = "spirits"
)

// Restrictions maps time slot ids to an enabled flag. An item with no true
// entry has no ordering window at all and is never orderable (explicit
// opt-in, not opt-out). Stored as JSONB.
type Restrictions map[string]bool

func (r Restrictions) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *Restrictions) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, r)
}

// HasAnyEnabled reports whether at least one slot is enabled. Used as the
// drinks-view visibility pre-filter, independent of the current time.
func (r Restrictions) HasAnyEnabled() bool {
	for _, enabled := range r {
		if enabled {
			return true
		}
	}
	return false
}

// MenuItem is an orderable catalog entry, bilingual (English/German), priced
// in EUR.
type MenuItem struct {
	TenantID         uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	Name             string            `db:"name" json:"name"`
	NameDE           string            `db:"name_de" json:"name_de"`
	Description      string            `db:"description" json:"description"`
	Price            float64           `db:"price" json:"price"`
	Category         Category          `db:"category" json:"category"`
	MenuCategory     MenuCategory      `db:"menu_category" json:"menu_category"`
	BeverageCategory *BeverageCategory `db:"beverage_category" json:"beverage_category,omitempty"`
	ImageURL         *string           `db:"image_url" json:"image_url,omitempty"`
	Available        bool              `db:"available" json:"available"`
	TimeRestrictions Restrictions      `db:"time_restrictions" json:"time_restrictions,omitempty"`
	entity.BaseEntity
}

// SpecialType distinguishes daily specials by service area.
type SpecialType string

const (
	SpecialTypeFood   SpecialType = "food"
	SpecialTypeDrinks SpecialType = "drinks"
	SpecialTypeSpa    SpecialType = "spa"
)

// DailySpecial is a promotional item with an absolute validity window in
// addition to the optional per-slot restrictions.
type DailySpecial struct {
	TenantID         uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	Name             string       `db:"name" json:"name"`
	NameDE           string       `db:"name_de" json:"name_de"`
	Description      string       `db:"description" json:"description"`
	Price            float64      `db:"price" json:"price"`
	SpecialType      SpecialType  `db:"special_type" json:"special_type"`
	ImageURL         *string      `db:"image_url" json:"image_url,omitempty"`
	HighlightColor   *string      `db:"highlight_color" json:"highlight_color,omitempty"`
	ValidFrom        time.Time    `db:"valid_from" json:"valid_from"`
	ValidUntil       time.Time    `db:"valid_until" json:"valid_until"`
	TimeRestrictions Restrictions `db:"time_restrictions" json:"time_restrictions,omitempty"`
	entity.BaseEntity
}

// VisibleAt reports whether the special's validity window contains t.
func (d *DailySpecial) VisibleAt(t time.Time) bool {
	return !t.Before(d.ValidFrom) && !t.After(d.ValidUntil)
}

// GroupedItem is a menu item decorated with its instant orderability. The
// grouping step decides visibility; the Orderable flag decides whether the
// guest can actually add the item to the cart right now. A guest may see an
// item whose window has not opened yet.
type GroupedItem struct {
	MenuItem
	Orderable bool `json:"orderable"`
}

// ItemGroup is one display bucket of the guest menu.
type ItemGroup struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Items []GroupedItem `json:"items"`
}
