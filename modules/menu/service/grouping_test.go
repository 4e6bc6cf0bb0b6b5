package service

import (
	"testing"

	"guest-order-api/modules/menu/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

func foodItem(name string, mc entity.MenuCategory, available bool, restrictions entity.Restrictions) entity.MenuItem {
	item := entity.MenuItem{
		Name:             name,
		NameDE:           name,
		Category:         entity.CategoryLunch,
		MenuCategory:     mc,
		Available:        available,
		TimeRestrictions: restrictions,
	}
	item.ID = uuid.New()
	return item
}

func drinkItem(name string, bc entity.BeverageCategory, restrictions entity.Restrictions) entity.MenuItem {
	b := bc
	item := entity.MenuItem{
		Name:             name,
		NameDE:           name,
		Category:         entity.CategoryDrinks,
		MenuCategory:     entity.MenuCategoryBeverages,
		BeverageCategory: &b,
		Available:        true,
		TimeRestrictions: restrictions,
	}
	item.ID = uuid.New()
	return item
}

func TestFilterAndGroupVisibilityVersusOrderability(t *testing.T) {
	lunch := uuid.New()
	slots := []tsEntity.TimeSlot{slot(lunch, "11:00", "15:00")}

	inWindow := entity.Restrictions{lunch.String(): true}
	items := []entity.MenuItem{
		foodItem("Schnitzel", entity.MenuCategoryMains, true, inWindow),
		foodItem("Gulasch", entity.MenuCategoryMains, true, nil),
		foodItem("Hidden", entity.MenuCategoryMains, false, inWindow),
	}

	groups := FilterAndGroup(items, entity.CategoryLunch, "", SubCategoryAll, slots, at(12, 0))
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Title != "Hauptgerichte" {
		t.Errorf("expected Hauptgerichte bucket, got %q", groups[0].Title)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected 2 visible items (unavailable hidden), got %d", len(groups[0].Items))
	}

	// Unrestricted food stays visible but is not orderable.
	byName := map[string]bool{}
	for _, gi := range groups[0].Items {
		byName[gi.Name] = gi.Orderable
	}
	if !byName["Schnitzel"] {
		t.Error("item inside its slot window should be orderable")
	}
	if byName["Gulasch"] {
		t.Error("item without restrictions should be visible but not orderable")
	}
}

func TestFilterAndGroupDrinksPrefilter(t *testing.T) {
	bar := uuid.New()
	slots := []tsEntity.TimeSlot{slot(bar, "11:00", "22:00")}

	items := []entity.MenuItem{
		drinkItem("Cola", entity.BeverageSoftDrinks, entity.Restrictions{bar.String(): true}),
		drinkItem("Fanta", entity.BeverageSoftDrinks, nil),
		drinkItem("Spezi", entity.BeverageSoftDrinks, entity.Restrictions{bar.String(): false}),
	}

	groups := FilterAndGroup(items, entity.CategoryDrinks, "", SubCategoryAll, slots, at(12, 0))
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Items) != 1 || groups[0].Items[0].Name != "Cola" {
		t.Errorf("drinks without any enabled slot must be hidden entirely, got %+v", groups[0].Items)
	}
}

func TestFilterAndGroupBucketsAndOrder(t *testing.T) {
	items := []entity.MenuItem{
		foodItem("Tiramisu", entity.MenuCategoryDesserts, true, nil),
		foodItem("Suppe", entity.MenuCategoryStarters, true, nil),
		foodItem("Steak", entity.MenuCategoryMains, true, nil),
	}

	groups := FilterAndGroup(items, entity.CategoryLunch, "", SubCategoryAll, nil, at(12, 0))
	want := []string{"Vorspeisen", "Hauptgerichte", "Nachspeisen"}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, title := range want {
		if groups[i].Title != title {
			t.Errorf("group %d = %q, want %q (fixed bucket order)", i, groups[i].Title, title)
		}
	}
}

func TestFilterAndGroupSearch(t *testing.T) {
	items := []entity.MenuItem{
		foodItem("Wiener Schnitzel", entity.MenuCategoryMains, true, nil),
		foodItem("Caesar Salad", entity.MenuCategoryStarters, true, nil),
	}

	groups := FilterAndGroup(items, entity.CategoryLunch, "SCHNITZEL", SubCategoryAll, nil, at(12, 0))
	if len(groups) != 1 || len(groups[0].Items) != 1 {
		t.Fatalf("expected exactly the matching item, got %+v", groups)
	}
	if groups[0].Items[0].Name != "Wiener Schnitzel" {
		t.Errorf("search must be case-insensitive substring, got %q", groups[0].Items[0].Name)
	}
}

func TestFilterAndGroupSubCategory(t *testing.T) {
	items := []entity.MenuItem{
		foodItem("Steak", entity.MenuCategoryMains, true, nil),
		foodItem("Suppe", entity.MenuCategoryStarters, true, nil),
	}

	groups := FilterAndGroup(items, entity.CategoryLunch, "", string(entity.MenuCategoryMains), nil, at(12, 0))
	if len(groups) != 1 || groups[0].Key != string(entity.MenuCategoryMains) {
		t.Fatalf("expected only the mains bucket, got %+v", groups)
	}
}

func TestFilterAndGroupEmptyResult(t *testing.T) {
	groups := FilterAndGroup(nil, entity.CategoryLunch, "", SubCategoryAll, nil, at(12, 0))
	if len(groups) != 0 {
		t.Errorf("no items should produce no groups, got %d", len(groups))
	}
}
