package notify

import (
	"encoding/json"

	"guest-order-api/core/constants"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// OrderSMSPayload carries everything the SMS handler needs so it never has to
// reach back into the database.
type OrderSMSPayload struct {
	TenantID    uuid.UUID `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Location    string    `json:"location"`
	RoomNumber  string    `json:"room_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	GuestPhone  string    `json:"guest_phone"`
	ItemLines   []string  `json:"item_lines"`
	Recipient   string    `json:"recipient"`
}

type VerificationEmailPayload struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
}

func NewOrderSMSTask(payload OrderSMSPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderSMS, data, asynq.Queue(constants.QueueNotifications), asynq.MaxRetry(5)), nil
}

func NewVerificationEmailTask(payload VerificationEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskVerificationEmail, data, asynq.Queue(constants.QueueNotifications), asynq.MaxRetry(5)), nil
}
