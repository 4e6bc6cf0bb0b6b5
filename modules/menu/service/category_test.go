package service

import (
	"testing"

	"guest-order-api/modules/menu/entity"
)

func TestCurrentMenuCategory(t *testing.T) {
	cases := []struct {
		name string
		hour int
		min  int
		want entity.Category
	}{
		{"early morning defaults to breakfast", 6, 0, entity.CategoryBreakfast},
		{"breakfast window start", 8, 30, entity.CategoryBreakfast},
		{"inside breakfast", 10, 0, entity.CategoryBreakfast},
		{"breakfast window end inclusive", 12, 0, entity.CategoryBreakfast},
		{"gap before lunch falls forward to lunch", 13, 0, entity.CategoryLunch},
		{"lunch window start", 14, 0, entity.CategoryLunch},
		{"inside lunch", 14, 30, entity.CategoryLunch},
		{"lunch window end inclusive", 16, 0, entity.CategoryLunch},
		{"gap before dinner falls forward to dinner", 17, 0, entity.CategoryDinner},
		{"dinner window start", 18, 0, entity.CategoryDinner},
		{"dinner window end inclusive", 20, 0, entity.CategoryDinner},
		{"after dinner defaults to lunch", 21, 0, entity.CategoryLunch},
		{"just before midnight defaults to lunch", 23, 59, entity.CategoryLunch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentMenuCategory(at(tc.hour, tc.min)); got != tc.want {
				t.Errorf("CurrentMenuCategory(%02d:%02d) = %q, want %q", tc.hour, tc.min, got, tc.want)
			}
		})
	}
}
