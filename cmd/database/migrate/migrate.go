package migration

import (
	"fmt"
	"log"
	"nutritrack/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.FoodCache{}); err != nil {
		log.Fatalf("Error migrating food cache table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodNutrient{}); err != nil {
		log.Fatalf("Error migrating food nutrients table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		log.Fatalf("Error migrating meals table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealFood{}); err != nil {
		log.Fatalf("Error migrating meal foods table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
