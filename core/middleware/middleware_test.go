package middleware

import "testing"

func TestSubdomainFromHost(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"seehotel.guestorder.app", "seehotel"},
		{"SEEHOTEL.guestorder.app", "seehotel"},
		{"seehotel.guestorder.app:8080", "seehotel"},
		{"localhost", "demo"},
		{"localhost:7070", "demo"},
		{"127.0.0.1:7070", "demo"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := SubdomainFromHost(tc.host); got != tc.want {
			t.Errorf("SubdomainFromHost(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}
