package domain

import (
	"errors"
)

// MealTypes is the canonical slot order used for every meal listing.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

var (
	MessageSuccessLogFood    = "food logged successfully"
	MessageSuccessGetMeals   = "meals retrieved successfully"
	MessageSuccessDeleteFood = "food removed from meal successfully"
	MessageSuccessDeleteMeal = "meal deleted successfully"

	MessageFailedLogFood    = "failed to log food"
	MessageFailedGetMeals   = "failed to retrieve meals"
	MessageFailedDeleteFood = "failed to remove food from meal"
	MessageFailedDeleteMeal = "failed to delete meal"

	ErrMealNotFound     = errors.New("meal not found")
	ErrMealFoodNotFound = errors.New("food not found in meal")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type (
	LogFoodRequest struct {
		FdcID    int64   `json:"fdc_id" validate:"required"`
		MealID   uint    `json:"meal_id" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	LogFoodResponse struct {
		Message string              `json:"message"`
		Food    ResolveFoodResponse `json:"food"`
	}

	MealSlot struct {
		ID   uint   `json:"id"`
		Type string `json:"type"`
	}

	MealTotals struct {
		Calories      float64 `json:"calories"`
		Carbohydrates float64 `json:"carbohydrates"`
		Protein       float64 `json:"protein"`
		Fats          float64 `json:"fats"`
	}

	MealFoodItem struct {
		FdcID         int64   `json:"fdc_id"`
		Description   string  `json:"description"`
		Brand         string  `json:"brand"`
		Quantity      float64 `json:"quantity"`
		Calories      float64 `json:"calories"`
		Carbohydrates float64 `json:"carbohydrates"`
		Protein       float64 `json:"protein"`
		Fats          float64 `json:"fats"`
	}

	MealView struct {
		ID     uint                    `json:"id"`
		Type   string                  `json:"type"`
		Date   string                  `json:"date"`
		Foods  map[int64]*MealFoodItem `json:"foods"`
		Totals MealTotals              `json:"totals"`
	}

	DailyMealsResponse struct {
		Meals       map[uint]*MealView `json:"meals"`
		DailyTotals MealTotals         `json:"daily_totals"`
	}

	DeleteFoodResponse struct {
		Message       string `json:"message"`
		DeletedFoodID int64  `json:"deleted_food_id"`
	}

	DeleteMealResponse struct {
		Message     string `json:"message"`
		DeletedType string `json:"deleted_meal_type"`
		DeletedDate string `json:"deleted_meal_date"`
	}
)

// EmptyMealView is the zero-valued placeholder returned for a meal lookup
// that matched no rows. Absence is not a failure for this read.
func EmptyMealView() *MealView {
	return &MealView{
		Foods:  map[int64]*MealFoodItem{},
		Totals: MealTotals{},
	}
}
