package handlers

import (
	"errors"
	"nutritrack/domain"
	"nutritrack/internal/api/presenters"
	"nutritrack/pkg/food"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		SearchFoods(c *fiber.Ctx) error
		ResolveFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{
		foodService: foodService,
	}
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	query := c.Query("food")
	if query == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchFood, errors.New("query parameter 'food' is required"))
	}

	results, err := h.foodService.SearchFoods(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, foodErrorStatus(err), domain.MessageFailedSearchFood, err)
	}

	return presenters.SuccessResponse(c, results, fiber.StatusOK, domain.MessageSuccessSearchFood)
}

func (h *foodHandler) ResolveFood(c *fiber.Ctx) error {
	fdcID, err := strconv.ParseInt(c.Params("fdcId"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveFood, errors.New("fdcId must be an integer"))
	}

	res, err := h.foodService.ResolveFood(c.Context(), fdcID)
	if err != nil {
		return presenters.ErrorResponse(c, foodErrorStatus(err), domain.MessageFailedResolveFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveFood)
}

// foodErrorStatus keeps the error taxonomy visible in status codes without
// leaking provider or storage internals beyond the domain error text.
func foodErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFoundRemote):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
