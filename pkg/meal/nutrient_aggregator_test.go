package meal

import (
	"nutritrack/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int64) *int64     { return &i }
func fltPtr(f float64) *float64 { return &f }

func nutrientRow(mealID uint, mealType string, fdcID int64, quantity float64, nutrient string, value float64) NutrientRow {
	return NutrientRow{
		MealID:       mealID,
		MealDate:     "2024-01-01",
		MealType:     mealType,
		FdcID:        intPtr(fdcID),
		Description:  strPtr("food"),
		Quantity:     fltPtr(quantity),
		NutrientName: strPtr(nutrient),
		Value:        fltPtr(value),
		UnitName:     strPtr("g"),
	}
}

func TestAdjustedValue(t *testing.T) {
	// 200 per 100g logged at 150g scales to 300.
	assert.Equal(t, float64(300), adjustedValue(200, 150))
	assert.Equal(t, float64(52), adjustedValue(52, 100))
	assert.InDelta(t, 0.15, adjustedValue(0.3, 50), 1e-9)
}

func TestAggregateRows(t *testing.T) {
	t.Run("buckets nutrients per food and totals per meal", func(t *testing.T) {
		rows := []NutrientRow{
			nutrientRow(1, "breakfast", 111, 150, "Energy", 200),
			nutrientRow(1, "breakfast", 111, 150, "Protein", 2),
			nutrientRow(1, "breakfast", 111, 150, "Carbohydrate, by difference", 10),
			nutrientRow(1, "breakfast", 111, 150, "Total lipid (fat)", 1),
		}

		meals := aggregateRows(rows)
		require.Len(t, meals, 1)

		view := meals[1]
		require.Contains(t, view.Foods, int64(111))
		item := view.Foods[111]
		assert.Equal(t, float64(300), item.Calories)
		assert.Equal(t, float64(3), item.Protein)
		assert.Equal(t, float64(15), item.Carbohydrates)
		assert.Equal(t, float64(1.5), item.Fats)

		assert.Equal(t, float64(300), view.Totals.Calories)
		assert.Equal(t, float64(3), view.Totals.Protein)
	})

	t.Run("unrecognized nutrient names are ignored", func(t *testing.T) {
		rows := []NutrientRow{
			nutrientRow(1, "lunch", 111, 100, "Fiber, total dietary", 50),
		}

		meals := aggregateRows(rows)
		view := meals[1]
		assert.Equal(t, domain.MealTotals{}, view.Totals)
		require.Contains(t, view.Foods, int64(111))
		assert.Zero(t, view.Foods[111].Calories)
		assert.Zero(t, view.Foods[111].Carbohydrates)
		assert.Zero(t, view.Foods[111].Protein)
		assert.Zero(t, view.Foods[111].Fats)
	})

	t.Run("empty meal materializes with zero totals and no foods", func(t *testing.T) {
		rows := []NutrientRow{
			{MealID: 7, MealDate: "2024-01-01", MealType: "snack"},
		}

		meals := aggregateRows(rows)
		require.Len(t, meals, 1)
		assert.Empty(t, meals[7].Foods)
		assert.Equal(t, domain.MealTotals{}, meals[7].Totals)
	})

	t.Run("multiple foods accumulate into the meal total", func(t *testing.T) {
		rows := []NutrientRow{
			nutrientRow(3, "dinner", 111, 100, "Energy", 52),
			nutrientRow(3, "dinner", 222, 50, "Energy", 100),
		}

		meals := aggregateRows(rows)
		assert.Equal(t, float64(102), meals[3].Totals.Calories)
	})
}

func TestOrderedMealIDs(t *testing.T) {
	meals := map[uint]*domain.MealView{
		4: {ID: 4, Type: "snack"},
		2: {ID: 2, Type: "lunch"},
		1: {ID: 1, Type: "breakfast"},
		3: {ID: 3, Type: "dinner"},
		5: {ID: 5, Type: "snack"},
	}

	ids := orderedMealIDs(meals)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids, "canonical type order, ties by id ascending")
}

func TestSumDailyTotals(t *testing.T) {
	meals := map[uint]*domain.MealView{
		1: {ID: 1, Type: "breakfast", Totals: domain.MealTotals{Calories: 52, Protein: 0.3}},
		2: {ID: 2, Type: "lunch", Totals: domain.MealTotals{Calories: 300, Fats: 10}},
	}

	totals := sumDailyTotals(meals)
	assert.Equal(t, float64(352), totals.Calories)
	assert.InDelta(t, 0.3, totals.Protein, 1e-9)
	assert.Equal(t, float64(10), totals.Fats)
}
