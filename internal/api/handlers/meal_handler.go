package handlers

import (
	"errors"
	"nutritrack/domain"
	"nutritrack/internal/api/presenters"
	"nutritrack/pkg/meal"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		LogFood(c *fiber.Ctx) error
		GetDailyMeals(c *fiber.Ctx) error
		GetMeal(c *fiber.Ctx) error
		DeleteFoodFromMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) LogFood(c *fiber.Ctx) error {
	req := new(domain.LogFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	res, err := h.mealService.LogFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedLogFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogFood)
}

func (h *mealHandler) GetDailyMeals(c *fiber.Ctx) error {
	date := c.Params("date")

	res, err := h.mealService.GetDailyMeals(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMeal(c *fiber.Ctx) error {
	mealID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, errors.New("meal id must be an integer"))
	}

	res, err := h.mealService.GetMeal(c.Context(), uint(mealID))
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) DeleteFoodFromMeal(c *fiber.Ctx) error {
	mealID, err := strconv.ParseUint(c.Params("mealId"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, errors.New("meal id must be an integer"))
	}
	fdcID, err := strconv.ParseInt(c.Params("fdcId"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, errors.New("fdcId must be an integer"))
	}

	res, err := h.mealService.DeleteFoodFromMeal(c.Context(), uint(mealID), fdcID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	mealID, err := strconv.ParseUint(c.Params("mealId"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, errors.New("meal id must be an integer"))
	}

	res, err := h.mealService.DeleteMeal(c.Context(), uint(mealID))
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func mealErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrMealNotFound), errors.Is(err, domain.ErrMealFoodNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFoodNotFoundRemote):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
