package food

import (
	"context"
	"nutritrack/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FoodRepository interface {
		GetCachedFood(ctx context.Context, fdcID int64) (*entities.FoodCache, error)
		SaveFood(ctx context.Context, food *entities.FoodCache, nutrients []entities.FoodNutrient) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetCachedFood(ctx context.Context, fdcID int64) (*entities.FoodCache, error) {
	var food entities.FoodCache
	if err := r.db.WithContext(ctx).
		Preload("Nutrients").
		Where("fdc_id = ?", fdcID).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// SaveFood writes a food record and its nutrient facts with insert-or-ignore
// semantics on both tables, so a concurrent or retried first-time resolution
// of the same food converges to a single row set.
func (r *foodRepository) SaveFood(ctx context.Context, food *entities.FoodCache, nutrients []entities.FoodNutrient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Nutrients").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fdc_id"}},
			DoNothing: true,
		}).Create(food).Error; err != nil {
			return err
		}

		if len(nutrients) == 0 {
			return nil
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "food_id"}, {Name: "nutrient_name"}},
			DoNothing: true,
		}).Create(&nutrients).Error
	})
}
