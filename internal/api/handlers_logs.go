package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
	"github.com/terraincognita07/vital/internal/services"
)

type mealInput struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDayParam(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if input.Calories < 0 {
		return apiError(c, fiber.StatusBadRequest, "calories must not be negative")
	}

	meal := models.Meal{
		UserID:   user.ID,
		Date:     services.DateAtLocation(day, handler.location),
		Name:     input.Name,
		Calories: input.Calories,
	}
	if err := handler.repos.Logs.CreateMeal(&meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

type sleepInput struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

func (handler *Handler) CreateSleepSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input sleepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startAt, err := parseTimestamp(input.StartAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	endAt, err := parseTimestamp(input.EndAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	session := models.SleepSession{
		UserID:  user.ID,
		StartAt: startAt,
		EndAt:   endAt,
	}
	if err := handler.repos.Logs.CreateSleepSession(&session); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save sleep session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

type workoutInput struct {
	Date            string `json:"date"`
	Kind            string `json:"kind"`
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startAt, err := parseOptionalTimestamp(input.StartAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	endAt, err := parseOptionalTimestamp(input.EndAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if (startAt == nil) != (endAt == nil) {
		return apiError(c, fiber.StatusBadRequest, "start_at and end_at must be set together")
	}
	if startAt == nil && input.DurationMinutes <= 0 {
		return apiError(c, fiber.StatusBadRequest, "a workout needs timestamps or a positive duration")
	}

	day := now(handler)
	if input.Date != "" {
		parsed, err := parseDayParam(input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		day = parsed
	} else if startAt != nil {
		day = *startAt
	}

	workout := models.Workout{
		UserID:          user.ID,
		Date:            services.DateAtLocation(day, handler.location),
		Kind:            input.Kind,
		StartAt:         startAt,
		EndAt:           endAt,
		DurationMinutes: input.DurationMinutes,
	}
	if err := handler.repos.Logs.CreateWorkout(&workout); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

type weightInput struct {
	Date     string  `json:"date"`
	WeightKG float64 `json:"weight_kg"`
}

func (handler *Handler) RecordWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input weightInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day := now(handler)
	if input.Date != "" {
		parsed, err := parseDayParam(input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		day = parsed
	}

	entry, err := handler.goals.RecordWeight(user.ID, day, input.WeightKG, handler.location)
	if err != nil {
		if err == services.ErrWeightNotPositive {
			return apiError(c, fiber.StatusBadRequest, "weight must be positive")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save weight")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
