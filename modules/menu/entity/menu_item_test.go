package entity

import (
	"testing"
	"time"
)

func TestRestrictionsHasAnyEnabled(t *testing.T) {
	if (Restrictions)(nil).HasAnyEnabled() {
		t.Error("nil restrictions have nothing enabled")
	}
	if (Restrictions{}).HasAnyEnabled() {
		t.Error("empty restrictions have nothing enabled")
	}
	if (Restrictions{"a": false, "b": false}).HasAnyEnabled() {
		t.Error("all-disabled restrictions have nothing enabled")
	}
	if !(Restrictions{"a": false, "b": true}).HasAnyEnabled() {
		t.Error("one enabled slot should count")
	}
}

func TestRestrictionsScanNull(t *testing.T) {
	var r Restrictions
	if err := r.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if r != nil {
		t.Errorf("NULL column should scan to nil map, got %v", r)
	}
}

func TestRestrictionsScanJSON(t *testing.T) {
	var r Restrictions
	if err := r.Scan([]byte(`{"slot-1":true,"slot-2":false}`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !r["slot-1"] || r["slot-2"] {
		t.Errorf("unexpected scan result: %v", r)
	}
}

func TestDailySpecialVisibleAt(t *testing.T) {
	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	special := DailySpecial{ValidFrom: from, ValidUntil: until}

	if !special.VisibleAt(from) || !special.VisibleAt(until) {
		t.Error("validity bounds are inclusive")
	}
	if special.VisibleAt(from.Add(-time.Second)) {
		t.Error("not visible before valid_from")
	}
	if special.VisibleAt(until.Add(time.Second)) {
		t.Error("not visible after valid_until")
	}
}
