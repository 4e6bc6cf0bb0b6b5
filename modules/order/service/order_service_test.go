package service

import (
	"testing"
	"time"
)

func TestSalesWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 42, 0, 0, time.UTC)
	midnight := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from time.Time
		to   time.Time
	}{
		{"today", midnight, midnight.AddDate(0, 0, 1)},
		{"yesterday", midnight.AddDate(0, 0, -1), midnight},
		{"week", midnight.AddDate(0, 0, -6), midnight.AddDate(0, 0, 1)},
		{"month", midnight.AddDate(0, -1, 0), midnight.AddDate(0, 0, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := salesWindow(tc.name, now)
			if !from.Equal(tc.from) || !to.Equal(tc.to) {
				t.Errorf("salesWindow(%q) = [%v, %v), want [%v, %v)", tc.name, from, to, tc.from, tc.to)
			}
		})
	}

	// Unknown names fall back to today.
	from, to := salesWindow("bogus", now)
	if !from.Equal(midnight) || !to.Equal(midnight.AddDate(0, 0, 1)) {
		t.Errorf("unknown range should map to today, got [%v, %v)", from, to)
	}
}
