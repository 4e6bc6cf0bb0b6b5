package service

import (
	"time"

	"guest-order-api/modules/menu/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"
)

// The availability engine decides whether an item may be ordered at a given
// instant. It is pure: callers pass the current time and a slot snapshot, so
// results are deterministic and the functions are safe to call from any
// goroutine. Everything degrades to "not orderable" rather than erroring.

// IsOrderable reports whether an item with the given slot restrictions may be
// ordered at now. An item with no restrictions (nil or empty map) is never
// orderable. Enabled slots combine as a logical OR: the first slot whose
// window contains now decides. Slot ids that are enabled but absent from the
// snapshot are skipped, they are stale references, not errors.
//
// The administrator availability toggle is a separate gate; callers compose
// item.Available && IsOrderable(...) at the point of ordering.
func IsOrderable(restrictions entity.Restrictions, slots []tsEntity.TimeSlot, now time.Time) bool {
	if len(restrictions) == 0 {
		return false
	}

	for slotID, enabled := range restrictions {
		if !enabled {
			continue
		}
		slot := findSlot(slots, slotID)
		if slot == nil {
			continue
		}
		if IsTimeInSlot(now, slot.StartTime, slot.EndTime) {
			return true
		}
	}
	return false
}

// IsTimeInSlot reports whether now falls inside [start, end], both bounds
// inclusive, at minute granularity. start and end are "HH:MM" or "HH:MM:SS"
// strings; a seconds component is accepted but ignored. Unparseable bounds
// yield false. A window with start > end can never match: the inclusive
// range is empty, so such slots stay closed rather than wrapping past
// midnight.
func IsTimeInSlot(now time.Time, start, end string) bool {
	startMin, ok := tsEntity.ParseMinutes(start)
	if !ok {
		return false
	}
	endMin, ok := tsEntity.ParseMinutes(end)
	if !ok {
		return false
	}

	nowMin := now.Hour()*60 + now.Minute()
	return nowMin >= startMin && nowMin <= endMin
}

// IsSlotActive reports whether the slot with the given id is currently open.
// Unknown ids are treated as inactive.
func IsSlotActive(slotID string, slots []tsEntity.TimeSlot, now time.Time) bool {
	slot := findSlot(slots, slotID)
	if slot == nil {
		return false
	}
	return IsTimeInSlot(now, slot.StartTime, slot.EndTime)
}

func findSlot(slots []tsEntity.TimeSlot, id string) *tsEntity.TimeSlot {
	for i := range slots {
		if slots[i].ID.String() == id {
			return &slots[i]
		}
	}
	return nil
}
