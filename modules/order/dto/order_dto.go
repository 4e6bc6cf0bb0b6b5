package dto

import "guest-order-api/modules/order/entity"

type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,gte=1,lte=50"`
}

type CreateOrderRequest struct {
	RoomNumber       string             `json:"room_number" validate:"required,max=20"`
	FirstName        string             `json:"first_name" validate:"required,max=100"`
	LastName         string             `json:"last_name" validate:"required,max=100"`
	GuestPhoneNumber string             `json:"guest_phone_number" validate:"omitempty,e164"`
	Location         string             `json:"location" validate:"required,oneof=pool room bar"`
	Items            []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new processing completed"`
}

type SalesQuery struct {
	Range    string `query:"range" validate:"omitempty,oneof=today yesterday week month"`
	Category string `query:"category" validate:"omitempty,oneof=all food drinks"`
}

type SalesResponse struct {
	Range    string            `json:"range"`
	Category string            `json:"category"`
	Rows     []entity.SalesRow `json:"rows"`
	Total    float64           `json:"total_revenue"`
}
