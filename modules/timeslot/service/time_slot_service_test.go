package service

import (
	"testing"

	"guest-order-api/core/errors"
)

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid window", "07:00", "11:00", false},
		{"valid with seconds", "07:00:00", "11:00:30", false},
		{"equal bounds allowed", "12:00", "12:00", false},
		{"crosses midnight rejected", "22:00", "04:00", true},
		{"bad start", "7am", "11:00", true},
		{"bad end", "07:00", "25:00", true},
		{"empty start", "", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindow(tc.start, tc.end)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateWindow(%q, %q) error = %v, wantErr %v", tc.start, tc.end, err, tc.wantErr)
			}
			if err != nil {
				if ae, ok := err.(*errors.AppError); !ok || ae.Code != errors.ErrInvalidInput {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	if got := normalizeTime("07:00"); got != "07:00:00" {
		t.Errorf("normalizeTime(07:00) = %q", got)
	}
	if got := normalizeTime("07:00:30"); got != "07:00:30" {
		t.Errorf("normalizeTime must keep explicit seconds, got %q", got)
	}
}
