package meal

import (
	"nutritrack/domain"
	"sort"
)

// Canonical nutrient names as stored in the food cache, mapped onto the
// four reported buckets.
const (
	nutrientEnergy  = "Energy"
	nutrientProtein = "Protein"
	nutrientCarbs   = "Carbohydrate, by difference"
	nutrientFat     = "Total lipid (fat)"
)

var mealTypeRank = map[string]int{
	"breakfast": 0,
	"lunch":     1,
	"dinner":    2,
	"snack":     3,
}

// adjustedValue applies the per-100g scaling rule: nutrient facts are stored
// per 100 mass units and scale linearly with the logged quantity. The food's
// own declared serving size is informational and never enters this formula.
func adjustedValue(valuePer100, quantity float64) float64 {
	return valuePer100 / 100 * quantity
}

// aggregateRows reduces the denormalized row set into per-meal views with
// per-food adjusted nutrient values and per-meal totals. Rows without a food
// (empty meals) still materialize their meal; unrecognized nutrient names
// are ignored.
func aggregateRows(rows []NutrientRow) map[uint]*domain.MealView {
	meals := map[uint]*domain.MealView{}

	for _, row := range rows {
		view, ok := meals[row.MealID]
		if !ok {
			view = &domain.MealView{
				ID:    row.MealID,
				Type:  row.MealType,
				Date:  row.MealDate,
				Foods: map[int64]*domain.MealFoodItem{},
			}
			meals[row.MealID] = view
		}

		if row.FdcID == nil {
			continue
		}

		item, ok := view.Foods[*row.FdcID]
		if !ok {
			item = &domain.MealFoodItem{
				FdcID: *row.FdcID,
			}
			if row.Description != nil {
				item.Description = *row.Description
			}
			if row.BrandName != nil {
				item.Brand = *row.BrandName
			}
			if row.Quantity != nil {
				item.Quantity = *row.Quantity
			}
			view.Foods[*row.FdcID] = item
		}

		if row.NutrientName == nil || row.Value == nil || row.Quantity == nil {
			continue
		}

		adjusted := adjustedValue(*row.Value, *row.Quantity)
		switch *row.NutrientName {
		case nutrientEnergy:
			item.Calories += adjusted
		case nutrientCarbs:
			item.Carbohydrates += adjusted
		case nutrientProtein:
			item.Protein += adjusted
		case nutrientFat:
			item.Fats += adjusted
		}
	}

	for _, view := range meals {
		for _, item := range view.Foods {
			view.Totals.Calories += item.Calories
			view.Totals.Carbohydrates += item.Carbohydrates
			view.Totals.Protein += item.Protein
			view.Totals.Fats += item.Fats
		}
	}

	return meals
}

// orderedMealIDs returns meal ids in display order: the canonical slot
// sequence breakfast, lunch, dinner, snack, ties broken by id ascending.
// Ordering is computed here rather than relied on from SQL or map iteration.
func orderedMealIDs(meals map[uint]*domain.MealView) []uint {
	ids := make([]uint, 0, len(meals))
	for id := range meals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := meals[ids[i]], meals[ids[j]]
		ra, rb := mealTypeRank[a.Type], mealTypeRank[b.Type]
		if ra != rb {
			return ra < rb
		}
		return a.ID < b.ID
	})
	return ids
}

// sumDailyTotals folds per-meal totals into the date total, accumulating in
// display order so the result is deterministic.
func sumDailyTotals(meals map[uint]*domain.MealView) domain.MealTotals {
	var totals domain.MealTotals
	for _, id := range orderedMealIDs(meals) {
		view := meals[id]
		totals.Calories += view.Totals.Calories
		totals.Carbohydrates += view.Totals.Carbohydrates
		totals.Protein += view.Totals.Protein
		totals.Fats += view.Totals.Fats
	}
	return totals
}
