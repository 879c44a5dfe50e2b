package food

import (
	"context"
	"errors"
	"nutritrack/domain"
	"nutritrack/entities"
	"nutritrack/pkg/usda"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// trackedNutrients maps the provider-internal nutrient ids onto the four
// canonical names the aggregator buckets by. Everything else the provider
// returns is dropped at resolution time.
var trackedNutrients = map[int64]string{
	1008: "Energy",
	1003: "Protein",
	1005: "Carbohydrate, by difference",
	1004: "Total lipid (fat)",
}

type (
	FoodService interface {
		ResolveFood(ctx context.Context, fdcID int64) (domain.ResolveFoodResponse, error)
		SearchFoods(ctx context.Context, query string) ([]domain.SearchFoodResult, error)
	}

	foodService struct {
		foodRepository FoodRepository
		provider       usda.Client
	}
)

func NewFoodService(foodRepository FoodRepository, provider usda.Client) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		provider:       provider,
	}
}

// ResolveFood returns the food from the cache when present; otherwise it
// fetches from the provider, filters the nutrient list down to the tracked
// set, writes through the cache once, and reports the source it served from.
func (s *foodService) ResolveFood(ctx context.Context, fdcID int64) (domain.ResolveFoodResponse, error) {
	cached, err := s.foodRepository.GetCachedFood(ctx, fdcID)
	if err == nil {
		return domain.ResolveFoodResponse{
			Source: domain.SourceCache,
			Food:   toFoodResponse(cached),
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ResolveFoodResponse{}, err
	}

	detail, err := s.provider.GetFood(ctx, fdcID)
	if err != nil {
		return domain.ResolveFoodResponse{}, err
	}

	food, nutrients := mapProviderFood(detail)
	if err := s.foodRepository.SaveFood(ctx, food, nutrients); err != nil {
		// Serve the fetched data anyway; the next resolution retries the write.
		log.Warnf("caching food %d failed: %v", fdcID, err)
	}

	food.Nutrients = nutrients
	return domain.ResolveFoodResponse{
		Source: domain.SourceAPI,
		Food:   toFoodResponse(food),
	}, nil
}

// SearchFoods queries the provider and reduces each candidate to the tracked
// nutrients, keyed by canonical name. The first value seen per name wins.
func (s *foodService) SearchFoods(ctx context.Context, query string) ([]domain.SearchFoodResult, error) {
	result, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	foods := make([]domain.SearchFoodResult, 0, len(result.Foods))
	for _, f := range result.Foods {
		nutrients := map[string]float64{}
		for _, n := range f.FoodNutrients {
			name, tracked := trackedNutrients[n.NutrientID]
			if !tracked {
				continue
			}
			if _, seen := nutrients[name]; !seen {
				nutrients[name] = n.Value
			}
		}
		foods = append(foods, domain.SearchFoodResult{
			FdcID:       f.FdcID,
			Description: f.Description,
			BrandName:   f.BrandName,
			Nutrients:   nutrients,
		})
	}

	return foods, nil
}

func mapProviderFood(detail *usda.FoodDetail) (*entities.FoodCache, []entities.FoodNutrient) {
	var nutrients []entities.FoodNutrient
	for _, n := range detail.FoodNutrients {
		name, tracked := trackedNutrients[n.Nutrient.ID]
		if !tracked {
			continue
		}
		nutrients = append(nutrients, entities.FoodNutrient{
			FoodID:       detail.FdcID,
			NutrientName: name,
			Value:        n.Amount,
			UnitName:     n.Nutrient.UnitName,
		})
	}

	food := &entities.FoodCache{
		FdcID:           detail.FdcID,
		Description:     detail.Description,
		ServingSizeUnit: detail.ServingUnit,
		ServingSize:     detail.ServingSize,
		HasRealServing:  detail.ServingSize > 0,
	}
	if detail.BrandName != "" {
		brand := detail.BrandName
		food.BrandName = &brand
	}
	if food.ServingSize == 0 {
		food.ServingSize = 100
	}
	if food.ServingSizeUnit == "" {
		food.ServingSizeUnit = "g"
	}

	return food, nutrients
}

func toFoodResponse(food *entities.FoodCache) domain.FoodResponse {
	res := domain.FoodResponse{
		FdcID:           food.FdcID,
		Description:     food.Description,
		ServingSizeUnit: food.ServingSizeUnit,
		ServingSize:     food.ServingSize,
		HasRealServing:  food.HasRealServing,
		Nutrients:       make([]domain.NutrientFact, 0, len(food.Nutrients)),
	}
	if food.BrandName != nil {
		res.BrandName = *food.BrandName
	}
	for _, n := range food.Nutrients {
		res.Nutrients = append(res.Nutrients, domain.NutrientFact{
			NutrientName: n.NutrientName,
			Value:        n.Value,
			UnitName:     n.UnitName,
		})
	}
	return res
}
