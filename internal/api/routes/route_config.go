package routes

import (
	"nutritrack/internal/api/handlers"
	"nutritrack/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	FoodHandler handlers.FoodHandler
	MealHandler handlers.MealHandler
	Middleware  middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestID())
	c.GuestRoute()
	c.Foods()
	c.Meals()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods")
	{
		foods.Get("/search", c.FoodHandler.SearchFoods)
		foods.Get("/:fdcId", c.FoodHandler.ResolveFood)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals")
	{
		meals.Post("/log", c.MealHandler.LogFood)
		meals.Get("/date/:date", c.MealHandler.GetDailyMeals)
		meals.Get("/:id", c.MealHandler.GetMeal)
		meals.Delete("/:mealId/foods/:fdcId", c.MealHandler.DeleteFoodFromMeal)
		meals.Delete("/:mealId", c.MealHandler.DeleteMeal)
	}
}
