package domain

import (
	"errors"
)

const (
	SourceCache = "cache"
	SourceAPI   = "api"
)

var (
	MessageSuccessResolveFood = "food retrieved successfully"
	MessageSuccessSearchFood  = "food search completed successfully"

	MessageFailedResolveFood = "failed to retrieve food data"
	MessageFailedSearchFood  = "failed to search foods"

	ErrFoodNotFoundRemote = errors.New("food not found in nutrition database")
	ErrRemoteUnavailable  = errors.New("nutrition provider unavailable")
)

type (
	NutrientFact struct {
		NutrientName string  `json:"nutrient_name"`
		Value        float64 `json:"value"`
		UnitName     string  `json:"unit_name"`
	}

	FoodResponse struct {
		FdcID           int64          `json:"fdc_id"`
		Description     string         `json:"description"`
		BrandName       string         `json:"brand_name,omitempty"`
		ServingSizeUnit string         `json:"serving_size_unit"`
		ServingSize     float64        `json:"serving_size"`
		HasRealServing  bool           `json:"has_real_serving"`
		Nutrients       []NutrientFact `json:"nutrients"`
	}

	ResolveFoodResponse struct {
		Source string       `json:"source"`
		Food   FoodResponse `json:"food"`
	}

	SearchFoodResult struct {
		FdcID       int64              `json:"fdc_id"`
		Description string             `json:"description"`
		BrandName   string             `json:"brand_name"`
		Nutrients   map[string]float64 `json:"nutrients"`
	}
)
