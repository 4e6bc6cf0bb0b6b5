package constants

import "time"

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Server
const (
	DefaultServerPort     = 7070
	ServerShutdownTimeout = 10 * time.Second
)

// Auth
const (
	TokenExpiryHours             = 24
	VerificationTokenExpiryHours = 24
	VerificationTokenLength      = 32
	BcryptCost                   = 12
)

// Time slot live updates: consumers wait this long after a change notification
// before re-fetching, so a burst of edits results in a single coalesced fetch.
const SlotRefreshDebounce = 1000 * time.Millisecond

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Asynq task types
const (
	TaskOrderSMS          = "notify:order_sms"
	TaskVerificationEmail = "notify:verification_email"
	QueueNotifications    = "notifications"
)

// Redis channel prefix for time slot change events, suffixed with the tenant id.
const TimeSlotChannelPrefix = "timeslots:changed:"
