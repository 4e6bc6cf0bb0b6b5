package service

import (
	"time"

	"guest-order-api/modules/menu/entity"
)

// Default category windows, in minutes since midnight. These are fixed UI
// defaults and deliberately independent of the administrator-configured time
// slot table: they only decide which tab the guest menu opens on.
const (
	breakfastStart = 8*60 + 30 // 08:30
	breakfastEnd   = 12 * 60   // 12:00
	lunchStart     = 14 * 60   // 14:00
	lunchEnd       = 16 * 60   // 16:00
	dinnerStart    = 18 * 60   // 18:00
	dinnerEnd      = 20 * 60   // 20:00
)

// CurrentMenuCategory returns the default meal category for now: the active
// window if one contains now (bounds inclusive), otherwise the next upcoming
// window. After dinner ends the default is lunch for the next day, not
// breakfast; that is the documented behavior, kept as is.
func CurrentMenuCategory(now time.Time) entity.Category {
	minutes := now.Hour()*60 + now.Minute()

	switch {
	case minutes >= breakfastStart && minutes <= breakfastEnd:
		return entity.CategoryBreakfast
	case minutes >= lunchStart && minutes <= lunchEnd:
		return entity.CategoryLunch
	case minutes >= dinnerStart && minutes <= dinnerEnd:
		return entity.CategoryDinner
	}

	switch {
	case minutes < breakfastStart:
		return entity.CategoryBreakfast
	case minutes < lunchStart:
		return entity.CategoryLunch
	case minutes < dinnerStart:
		return entity.CategoryDinner
	}

	return entity.CategoryLunch
}
