package entities

// FoodCache stores the canonical record of a food as first seen from the
// nutrition provider. Rows are insert-only; the first observed version wins
// for the lifetime of the cache.
type FoodCache struct {
	FdcID           int64   `gorm:"primary_key;autoIncrement:false" json:"fdc_id"`
	Description     string  `json:"description"`
	BrandName       *string `json:"brand_name,omitempty"`
	ServingSizeUnit string  `gorm:"default:g" json:"serving_size_unit"`
	ServingSize     float64 `gorm:"default:100" json:"serving_size"`
	HasRealServing  bool    `json:"has_real_serving"`

	Nutrients []FoodNutrient `gorm:"foreignKey:FoodID;references:FdcID" json:"nutrients,omitempty"`
	Timestamp
}

// FoodNutrient holds one tracked nutrient fact, normalized per 100 mass
// units. The composite unique index keeps concurrent first-time resolution
// of the same food from inserting duplicate facts.
type FoodNutrient struct {
	ID           uint    `gorm:"primary_key;autoIncrement" json:"id"`
	FoodID       int64   `gorm:"uniqueIndex:idx_food_nutrient;not null" json:"food_id"`
	NutrientName string  `gorm:"uniqueIndex:idx_food_nutrient;not null" json:"nutrient_name"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unit_name"`
}
