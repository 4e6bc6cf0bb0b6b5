package notify

import (
	"strings"
	"testing"
)

func TestBuildOrderMessage(t *testing.T) {
	payload := OrderSMSPayload{
		OrderNumber: "a1b2c3d",
		Location:    "room",
		RoomNumber:  "204",
		FirstName:   "Anna",
		LastName:    "Schmidt",
		GuestPhone:  "+491701234567",
		ItemLines:   []string{"2x Wiener Schnitzel", "1x Apfelschorle"},
	}

	msg := buildOrderMessage(payload)

	for _, want := range []string{
		"Neue Bestellung #a1b2c3d!",
		"2x Wiener Schnitzel\n1x Apfelschorle",
		"Lieferort: Zimmer 204",
		"Name: Anna Schmidt",
		"Tel: +491701234567",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildOrderMessageLocations(t *testing.T) {
	pool := buildOrderMessage(OrderSMSPayload{Location: "pool"})
	if !strings.Contains(pool, "Lieferort: Pool") {
		t.Errorf("pool location wrong:\n%s", pool)
	}
	bar := buildOrderMessage(OrderSMSPayload{Location: "bar"})
	if !strings.Contains(bar, "Lieferort: Bar") {
		t.Errorf("bar location wrong:\n%s", bar)
	}
}
