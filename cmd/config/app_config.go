package config

import (
	"nutritrack/internal/api/handlers"
	"nutritrack/internal/api/routes"
	"nutritrack/internal/middleware"
	"nutritrack/internal/utils"
	"nutritrack/pkg/food"
	"nutritrack/pkg/meal"
	"nutritrack/pkg/usda"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// external provider
	usdaClient := usda.NewClient(utils.GetConfig("USDA_API_KEY"))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository, usdaClient)
	mealService := meal.NewMealService(mealRepository, foodService)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService)
	mealHandler := handlers.NewMealHandler(mealService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		FoodHandler: foodHandler,
		MealHandler: mealHandler,
		Middleware:  middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
