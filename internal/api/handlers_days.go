package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/services"
)

// GetDayScore evaluates a day from its raw logs without persisting anything.
func (handler *Handler) GetDayScore(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := handler.summaries.EvaluateDate(user.ID, day, services.TargetsForUser(user), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate day")
	}
	return c.JSON(result)
}

// UpsertDaySummary evaluates a day and writes the scored summary back so the
// streak walk can read it later.
func (handler *Handler) UpsertDaySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := handler.summaries.EvaluateAndStoreDate(user.ID, day, services.TargetsForUser(user), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store day summary")
	}
	return c.JSON(result)
}

// GetStreak reports both streak conventions: the literal walk and the
// never-zero display clamp.
func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	walked, display, err := handler.summaries.CurrentStreakForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute streak")
	}
	return c.JSON(fiber.Map{
		"streak":  walked,
		"display": display,
	})
}
