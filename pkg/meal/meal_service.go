package meal

import (
	"context"
	"errors"
	"fmt"
	"nutritrack/domain"
	"nutritrack/entities"
	"nutritrack/pkg/food"
	"time"

	"gorm.io/gorm"
)

type (
	MealService interface {
		EnsureMealsForDate(ctx context.Context, date string) ([]domain.MealSlot, error)
		LogFood(ctx context.Context, req domain.LogFoodRequest) (domain.LogFoodResponse, error)
		GetDailyMeals(ctx context.Context, date string) (domain.DailyMealsResponse, error)
		GetMeal(ctx context.Context, mealID uint) (*domain.MealView, error)
		DeleteFoodFromMeal(ctx context.Context, mealID uint, fdcID int64) (domain.DeleteFoodResponse, error)
		DeleteMeal(ctx context.Context, mealID uint) (domain.DeleteMealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		foodService    food.FoodService
	}
)

func NewMealService(mealRepository MealRepository, foodService food.FoodService) MealService {
	return &mealService{
		mealRepository: mealRepository,
		foodService:    foodService,
	}
}

// EnsureMealsForDate guarantees the four canonical slots exist for the date
// and returns them in canonical order. Each missing slot is inserted with
// conflict-do-nothing semantics, so the call is idempotent and a retried
// partial failure converges.
func (s *mealService) EnsureMealsForDate(ctx context.Context, date string) ([]domain.MealSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	existing, err := s.mealRepository.GetMealsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	have := map[string]bool{}
	for _, m := range existing {
		have[m.MealType] = true
	}

	missing := 0
	for _, mealType := range domain.MealTypes {
		if have[mealType] {
			continue
		}
		missing++
		meal := &entities.Meal{MealDate: date, MealType: mealType}
		if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
			return nil, err
		}
	}

	if missing > 0 {
		existing, err = s.mealRepository.GetMealsByDate(ctx, date)
		if err != nil {
			return nil, err
		}
	}

	slots := make([]domain.MealSlot, 0, len(existing))
	for _, mealType := range domain.MealTypes {
		for _, m := range existing {
			if m.MealType == mealType {
				slots = append(slots, domain.MealSlot{ID: m.ID, Type: m.MealType})
			}
		}
	}

	return slots, nil
}

// LogFood resolves the food (guaranteeing it is cached), then upserts the
// ledger entry; a repeated log of the same food into the same meal adds to
// the stored quantity. The resolution result is returned so callers can
// render the food without a second round trip.
func (s *mealService) LogFood(ctx context.Context, req domain.LogFoodRequest) (domain.LogFoodResponse, error) {
	if req.Quantity <= 0 {
		return domain.LogFoodResponse{}, domain.ErrInvalidQuantity
	}

	if _, err := s.mealRepository.GetMealByID(ctx, req.MealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LogFoodResponse{}, domain.ErrMealNotFound
		}
		return domain.LogFoodResponse{}, err
	}

	resolved, err := s.foodService.ResolveFood(ctx, req.FdcID)
	if err != nil {
		return domain.LogFoodResponse{}, err
	}

	if err := s.mealRepository.UpsertMealFood(ctx, req.MealID, req.FdcID, req.Quantity); err != nil {
		return domain.LogFoodResponse{}, err
	}

	return domain.LogFoodResponse{
		Message: domain.MessageSuccessLogFood,
		Food:    resolved,
	}, nil
}

// GetDailyMeals ensures the slots for the date exist, then serves the whole
// day from a single denormalized read reduced by the aggregator.
func (s *mealService) GetDailyMeals(ctx context.Context, date string) (domain.DailyMealsResponse, error) {
	if _, err := s.EnsureMealsForDate(ctx, date); err != nil {
		return domain.DailyMealsResponse{}, err
	}

	rows, err := s.mealRepository.GetDailyNutrientRows(ctx, date)
	if err != nil {
		return domain.DailyMealsResponse{}, err
	}

	meals := aggregateRows(rows)
	return domain.DailyMealsResponse{
		Meals:       meals,
		DailyTotals: sumDailyTotals(meals),
	}, nil
}

// GetMeal returns a single meal view. A meal id that matches no rows yields
// the zero-valued placeholder rather than an error.
func (s *mealService) GetMeal(ctx context.Context, mealID uint) (*domain.MealView, error) {
	rows, err := s.mealRepository.GetMealNutrientRows(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return domain.EmptyMealView(), nil
	}

	meals := aggregateRows(rows)
	return meals[mealID], nil
}

func (s *mealService) DeleteFoodFromMeal(ctx context.Context, mealID uint, fdcID int64) (domain.DeleteFoodResponse, error) {
	affected, err := s.mealRepository.DeleteMealFood(ctx, mealID, fdcID)
	if err != nil {
		return domain.DeleteFoodResponse{}, err
	}
	if affected == 0 {
		return domain.DeleteFoodResponse{}, domain.ErrMealFoodNotFound
	}

	return domain.DeleteFoodResponse{
		Message:       fmt.Sprintf("food %d deleted from meal %d", fdcID, mealID),
		DeletedFoodID: fdcID,
	}, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, mealID uint) (domain.DeleteMealResponse, error) {
	meal, err := s.mealRepository.DeleteMeal(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteMealResponse{}, domain.ErrMealNotFound
		}
		return domain.DeleteMealResponse{}, err
	}

	return domain.DeleteMealResponse{
		Message:     fmt.Sprintf("meal %d was deleted", mealID),
		DeletedType: meal.MealType,
		DeletedDate: meal.MealDate,
	}, nil
}
