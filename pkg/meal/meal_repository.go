package meal

import (
	"context"
	"nutritrack/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NutrientRow is one row of the denormalized meal/food/nutrient read. The
// food and nutrient columns are nullable because empty meals still produce
// a row through the left joins.
type NutrientRow struct {
	MealID       uint     `gorm:"column:meal_id"`
	MealDate     string   `gorm:"column:meal_date"`
	MealType     string   `gorm:"column:meal_type"`
	FdcID        *int64   `gorm:"column:fdc_id"`
	Description  *string  `gorm:"column:description"`
	BrandName    *string  `gorm:"column:brand_name"`
	Quantity     *float64 `gorm:"column:quantity"`
	NutrientName *string  `gorm:"column:nutrient_name"`
	Value        *float64 `gorm:"column:value"`
	UnitName     *string  `gorm:"column:unit_name"`
}

const nutrientRowSelect = `SELECT
	m.id AS meal_id,
	m.meal_date,
	m.meal_type,
	f.fdc_id,
	f.description,
	f.brand_name,
	mf.quantity,
	fn.nutrient_name,
	fn.value,
	fn.unit_name
FROM meals m
LEFT JOIN meal_foods mf ON mf.meal_id = m.id
LEFT JOIN food_caches f ON f.fdc_id = mf.food_id
LEFT JOIN food_nutrients fn ON fn.food_id = f.fdc_id
`

type (
	MealRepository interface {
		GetMealsByDate(ctx context.Context, date string) ([]entities.Meal, error)
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id uint) (*entities.Meal, error)
		UpsertMealFood(ctx context.Context, mealID uint, fdcID int64, quantity float64) error
		DeleteMealFood(ctx context.Context, mealID uint, fdcID int64) (int64, error)
		DeleteMeal(ctx context.Context, mealID uint) (*entities.Meal, error)
		GetDailyNutrientRows(ctx context.Context, date string) ([]NutrientRow, error)
		GetMealNutrientRows(ctx context.Context, mealID uint) ([]NutrientRow, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) GetMealsByDate(ctx context.Context, date string) ([]entities.Meal, error) {
	var meals []entities.Meal
	if err := r.db.WithContext(ctx).
		Where("meal_date = ?", date).
		Order("id asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// CreateMeal inserts a meal slot, ignoring the insert when the (date, type)
// slot already exists. Concurrent ensure calls for the same date converge.
func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meal_date"}, {Name: "meal_type"}},
		DoNothing: true,
	}).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id uint) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpsertMealFood logs a food into a meal in a single atomic statement.
// A conflicting row accumulates the quantity instead of being replaced,
// so concurrent logs of the same (meal, food) pair never lose updates.
func (r *mealRepository) UpsertMealFood(ctx context.Context, mealID uint, fdcID int64, quantity float64) error {
	entry := entities.MealFood{
		MealID:   mealID,
		FoodID:   fdcID,
		Quantity: quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meal_id"}, {Name: "food_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&entry).Error
}

func (r *mealRepository) DeleteMealFood(ctx context.Context, mealID uint, fdcID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("meal_id = ? AND food_id = ?", mealID, fdcID).
		Delete(&entities.MealFood{})
	return result.RowsAffected, result.Error
}

// DeleteMeal removes the meal and its food associations and returns the
// deleted record. gorm.ErrRecordNotFound signals a nonexistent meal.
func (r *mealRepository) DeleteMeal(ctx context.Context, mealID uint) (*entities.Meal, error) {
	var meal entities.Meal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", mealID).First(&meal).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", mealID).Delete(&entities.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Meal{}, mealID).Error
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetDailyNutrientRows(ctx context.Context, date string) ([]NutrientRow, error) {
	var rows []NutrientRow
	if err := r.db.WithContext(ctx).
		Raw(nutrientRowSelect+"WHERE m.meal_date = ? ORDER BY m.id", date).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mealRepository) GetMealNutrientRows(ctx context.Context, mealID uint) ([]NutrientRow, error) {
	var rows []NutrientRow
	if err := r.db.WithContext(ctx).
		Raw(nutrientRowSelect+"WHERE m.id = ?", mealID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
