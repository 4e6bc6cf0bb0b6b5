package entity

import "testing"

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"07:30", 450, true},
		{"23:59", 1439, true},
		{"11:00:00", 660, true},
		{"11:00:59", 660, true}, // seconds ignored
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:30", 0, false},
		{"12", 0, false},
		{"12:00:00:00", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseMinutes(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseMinutes(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
