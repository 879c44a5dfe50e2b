package entities

// Meal is one of the four canonical slots of a calendar date. The composite
// unique index guarantees at most one slot per (date, type) even when two
// requests ensure the same date concurrently.
type Meal struct {
	ID       uint   `gorm:"primary_key;autoIncrement" json:"id"`
	MealDate string `gorm:"size:10;uniqueIndex:idx_meal_date_type;not null" json:"meal_date"` // YYYY-MM-DD, compared as an opaque string
	MealType string `gorm:"uniqueIndex:idx_meal_date_type;not null" json:"meal_type"` // breakfast, lunch, dinner, snack

	Timestamp
}

// MealFood associates a logged food with a meal. Quantity is grams;
// repeated logs of the same food accumulate into the single row.
type MealFood struct {
	ID       uint    `gorm:"primary_key;autoIncrement" json:"id"`
	MealID   uint    `gorm:"uniqueIndex:idx_meal_food;not null" json:"meal_id"`
	FoodID   int64   `gorm:"uniqueIndex:idx_meal_food;not null" json:"food_id"`
	Quantity float64 `json:"quantity"`

	Meal *Meal      `gorm:"foreignKey:MealID" json:"-"`
	Food *FoodCache `gorm:"foreignKey:FoodID;references:FdcID" json:"-"`
	Timestamp
}
