package service

import (
	"strings"
	"time"

	"guest-order-api/modules/menu/entity"
	tsEntity "guest-order-api/modules/timeslot/entity"
)

// SubCategoryAll disables sub-category filtering.
const SubCategoryAll = "all"

var foodBuckets = []entity.ItemGroup{
	{Key: string(entity.MenuCategoryStarters), Title: "Vorspeisen"},
	{Key: string(entity.MenuCategoryMains), Title: "Hauptgerichte"},
	{Key: string(entity.MenuCategoryDesserts), Title: "Nachspeisen"},
	{Key: string(entity.MenuCategorySnacks), Title: "Snacks"},
	{Key: string(entity.MenuCategoryBeverages), Title: "Getränke"},
}

var drinkBuckets = []entity.ItemGroup{
	{Key: string(entity.BeverageSoftDrinks), Title: "Softdrinks"},
	{Key: string(entity.BeverageHotDrinks), Title: "Heiße Getränke"},
	{Key: string(entity.BeverageCocktails), Title: "Cocktails"},
	{Key: string(entity.BeverageWine), Title: "Weine"},
	{Key: string(entity.BeverageBeer), Title: "Biere"},
	{Key: string(entity.BeverageSpirits), Title: "Spirituosen"},
}

// FilterAndGroup filters items for display and sorts the survivors into the
// fixed buckets of the requested view. Filtering checks the administrator
// availability toggle, a case-insensitive substring match on name and
// description, and the selected sub-category. The drinks view additionally
// hides items without any enabled slot restriction, regardless of now.
// Insertion order is preserved within each bucket and empty buckets are
// dropped.
func FilterAndGroup(
	items []entity.MenuItem,
	category entity.Category,
	searchTerm string,
	selectedSubCategory string,
	slots []tsEntity.TimeSlot,
	now time.Time,
) []entity.ItemGroup {
	drinks := category == entity.CategoryDrinks

	var buckets []entity.ItemGroup
	if drinks {
		buckets = make([]entity.ItemGroup, len(drinkBuckets))
		copy(buckets, drinkBuckets)
	} else {
		buckets = make([]entity.ItemGroup, len(foodBuckets))
		copy(buckets, foodBuckets)
	}

	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b.Key] = i
	}

	search := strings.ToLower(searchTerm)

	for _, item := range items {
		if !item.Available {
			continue
		}
		if !matchesSearch(item, search) {
			continue
		}
		if !matchesSubCategory(item, selectedSubCategory) {
			continue
		}
		if drinks && item.Category == entity.CategoryDrinks && !item.TimeRestrictions.HasAnyEnabled() {
			continue
		}

		key := string(item.MenuCategory)
		if drinks {
			if item.BeverageCategory == nil {
				continue
			}
			key = string(*item.BeverageCategory)
		}

		i, ok := index[key]
		if !ok {
			continue
		}

		buckets[i].Items = append(buckets[i].Items, entity.GroupedItem{
			MenuItem:  item,
			Orderable: IsOrderable(item.TimeRestrictions, slots, now),
		})
	}

	grouped := make([]entity.ItemGroup, 0, len(buckets))
	for _, b := range buckets {
		if len(b.Items) > 0 {
			grouped = append(grouped, b)
		}
	}
	return grouped
}

func matchesSearch(item entity.MenuItem, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search)
}

func matchesSubCategory(item entity.MenuItem, selected string) bool {
	if selected == "" || selected == SubCategoryAll {
		return true
	}
	if string(item.MenuCategory) == selected {
		return true
	}
	return item.BeverageCategory != nil && string(*item.BeverageCategory) == selected
}
