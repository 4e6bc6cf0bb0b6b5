package entity

import (
	coreEntity "guest-order-api/core/entity"

	"github.com/google/uuid"
)

type Location string

const (
	LocationPool Location = "pool"
	LocationRoom Location = "room"
	LocationBar  Location = "bar"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

type Order struct {
	TenantID         uuid.UUID   `db:"tenant_id" json:"tenant_id"`
	OrderNumber      string      `db:"order_number" json:"order_number"`
	RoomNumber       string      `db:"room_number" json:"room_number"`
	FirstName        string      `db:"first_name" json:"first_name"`
	LastName         string      `db:"last_name" json:"last_name"`
	GuestPhoneNumber string      `db:"guest_phone_number" json:"guest_phone_number"`
	Location         Location    `db:"location" json:"location"`
	Status           Status      `db:"status" json:"status"`
	Total            float64     `db:"total" json:"total"`
	Items            []OrderItem `db:"-" json:"items,omitempty"`
	coreEntity.BaseEntity
}

type OrderItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OrderID     uuid.UUID `db:"order_id" json:"order_id"`
	MenuItemID  uuid.UUID `db:"menu_item_id" json:"menu_item_id"`
	Name        string    `db:"name" json:"name"`
	Quantity    int       `db:"quantity" json:"quantity"`
	PriceAtTime float64   `db:"price_at_time" json:"price_at_time"`
}

// SalesRow is one line of the per-item sales aggregation.
type SalesRow struct {
	MenuItemID uuid.UUID `db:"menu_item_id" json:"menu_item_id"`
	Name       string    `db:"name" json:"name"`
	Category   string    `db:"category" json:"category"`
	Quantity   int       `db:"quantity" json:"quantity"`
	Revenue    float64   `db:"revenue" json:"revenue"`
}
