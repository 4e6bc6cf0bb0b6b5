package dto

type CreateTimeSlotRequest struct {
	Label                   string  `json:"label" validate:"required,max=100"`
	StartTime               string  `json:"start_time" validate:"required,timeofday"`
	EndTime                 string  `json:"end_time" validate:"required,timeofday"`
	IsDrinks                bool    `json:"is_drinks"`
	StaffNotificationNumber *string `json:"staff_notification_number" validate:"omitempty,e164"`
}

type UpdateTimeSlotRequest struct {
	Label                   string  `json:"label" validate:"required,max=100"`
	StartTime               string  `json:"start_time" validate:"required,timeofday"`
	EndTime                 string  `json:"end_time" validate:"required,timeofday"`
	IsDrinks                bool    `json:"is_drinks"`
	StaffNotificationNumber *string `json:"staff_notification_number" validate:"omitempty,e164"`
}
