package service

import (
	"testing"
	"time"

	"guest-order-api/modules/menu/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 31, hour, min, 0, 0, time.UTC)
}

func slot(id uuid.UUID, start, end string) tsEntity.TimeSlot {
	s := tsEntity.TimeSlot{StartTime: start, EndTime: end}
	s.ID = id
	return s
}

func TestIsOrderableNoRestrictions(t *testing.T) {
	slots := []tsEntity.TimeSlot{slot(uuid.New(), "00:00", "23:59")}

	if IsOrderable(nil, slots, at(12, 0)) {
		t.Error("nil restrictions should never be orderable")
	}
	if IsOrderable(entity.Restrictions{}, slots, at(12, 0)) {
		t.Error("empty restrictions should never be orderable")
	}
}

func TestIsOrderableEnabledSlotsCombineAsOr(t *testing.T) {
	breakfast := uuid.New()
	dinner := uuid.New()
	slots := []tsEntity.TimeSlot{
		slot(breakfast, "07:00", "11:00"),
		slot(dinner, "17:00", "22:00"),
	}
	restrictions := entity.Restrictions{
		breakfast.String(): true,
		dinner.String():    true,
	}

	if !IsOrderable(restrictions, slots, at(8, 30)) {
		t.Error("expected orderable during breakfast window")
	}
	if !IsOrderable(restrictions, slots, at(19, 0)) {
		t.Error("expected orderable during dinner window")
	}
	if IsOrderable(restrictions, slots, at(14, 0)) {
		t.Error("expected not orderable between windows")
	}
}

func TestIsOrderableDisabledSlotIgnored(t *testing.T) {
	id := uuid.New()
	slots := []tsEntity.TimeSlot{slot(id, "00:00", "23:59")}
	restrictions := entity.Restrictions{id.String(): false}

	if IsOrderable(restrictions, slots, at(12, 0)) {
		t.Error("disabled slot must not make an item orderable")
	}
}

func TestIsOrderableUnknownSlotIDSkipped(t *testing.T) {
	known := uuid.New()
	slots := []tsEntity.TimeSlot{slot(known, "07:00", "11:00")}
	restrictions := entity.Restrictions{
		uuid.New().String(): true, // stale reference, no matching slot
		known.String():      true,
	}

	if !IsOrderable(restrictions, slots, at(8, 0)) {
		t.Error("stale slot reference must not block a valid one")
	}
	if IsOrderable(entity.Restrictions{uuid.New().String(): true}, slots, at(8, 0)) {
		t.Error("only stale references should never be orderable")
	}
}

func TestIsOrderableEmptySnapshot(t *testing.T) {
	restrictions := entity.Restrictions{uuid.New().String(): true}
	if IsOrderable(restrictions, nil, at(12, 0)) {
		t.Error("no slots configured means nothing is orderable")
	}
}

func TestIsTimeInSlotInclusiveBounds(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", at(6, 59), false},
		{"at start", at(7, 0), true},
		{"inside", at(9, 30), true},
		{"at end", at(11, 0), true},
		{"after end", at(11, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTimeInSlot(tc.now, "07:00", "11:00"); got != tc.want {
				t.Errorf("IsTimeInSlot(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestIsTimeInSlotSecondsIgnored(t *testing.T) {
	now := time.Date(2026, 8, 31, 11, 0, 59, 0, time.UTC)
	if !IsTimeInSlot(now, "07:00:00", "11:00:30") {
		t.Error("seconds must be ignored on both now and the bounds")
	}
}

func TestIsTimeInSlotUnparseableBounds(t *testing.T) {
	for _, bad := range []string{"", "7am", "25:00", "12:60", "12", "aa:bb"} {
		if IsTimeInSlot(at(12, 0), bad, "23:00") {
			t.Errorf("unparseable start %q should yield false", bad)
		}
		if IsTimeInSlot(at(12, 0), "01:00", bad) {
			t.Errorf("unparseable end %q should yield false", bad)
		}
	}
}

func TestIsTimeInSlotStartAfterEndNeverMatches(t *testing.T) {
	for _, now := range []time.Time{at(23, 0), at(2, 0), at(12, 0)} {
		if IsTimeInSlot(now, "22:00", "04:00") {
			t.Errorf("window crossing midnight must never match, got true at %v", now)
		}
	}
}

func TestIsSlotActive(t *testing.T) {
	id := uuid.New()
	slots := []tsEntity.TimeSlot{slot(id, "10:00", "14:00")}

	if !IsSlotActive(id.String(), slots, at(12, 0)) {
		t.Error("expected slot active inside window")
	}
	if IsSlotActive(id.String(), slots, at(15, 0)) {
		t.Error("expected slot inactive outside window")
	}
	if IsSlotActive(uuid.New().String(), slots, at(12, 0)) {
		t.Error("unknown slot id must be inactive")
	}
}
