package entity

import (
	"strconv"
	"strings"

	"guest-order-api/core/entity"

	"github.com/google/uuid"
)

// TimeSlot is a named recurring daily ordering window, administrator-defined.
// Start and end are naive times of day ("HH:MM:SS"), interpreted in the
// venue's local wall clock. Overlaps between slots are allowed.
type TimeSlot struct {
	TenantID                uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Label                   string    `db:"label" json:"label"`
	StartTime               string    `db:"start_time" json:"start_time"`
	EndTime                 string    `db:"end_time" json:"end_time"`
	IsDrinks                bool      `db:"is_drinks" json:"is_drinks"`
	StaffNotificationNumber *string   `db:"staff_notification_number" json:"staff_notification_number,omitempty"`
	entity.BaseEntity
}

// ParseMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// The seconds component is accepted but ignored; comparison granularity is
// one minute. Returns ok=false for anything unparseable.
func ParseMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}
