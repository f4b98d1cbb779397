package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/services"
)

// GetEnergyProfile returns the calculator outputs goal-setting screens need:
// BMR, TDEE, and the adaptive TDEE derived from logged history.
func (handler *Handler) GetEnergyProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	bmr := services.BMR(user.WeightKG, user.HeightCM, user.AgeAt(now(handler)), user.Sex)
	factor, known := services.ActivityFactor(user.ActivityLevel)
	tdee := 0
	if known {
		tdee = services.TDEE(bmr, factor)
	}

	adaptive, err := handler.goals.AdaptiveTDEEForUser(user.ID, now(handler), services.DefaultTrendDays, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute adaptive tdee")
	}

	plateau, err := handler.goals.CheckPlateau(user.ID, user, now(handler), 14, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check plateau")
	}

	return c.JSON(fiber.Map{
		"bmr":           int(bmr),
		"tdee":          tdee,
		"adaptive_tdee": adaptive,
		"plateau":       plateau,
	})
}

type oneRepMaxInput struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

func (handler *Handler) GetOneRepMax(c *fiber.Ctx) error {
	var input oneRepMaxInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return c.JSON(fiber.Map{"one_rep_max": services.OneRepMax(input.Weight, input.Reps)})
}

type progressionInput struct {
	CurrentWeight float64 `json:"current_weight"`
	LastSetRIR    int     `json:"last_set_rir"`
}

func (handler *Handler) GetProgression(c *fiber.Ctx) error {
	var input progressionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	weight, action := services.SuggestProgression(input.CurrentWeight, input.LastSetRIR)
	return c.JSON(fiber.Map{"suggested_weight": weight, "action": action})
}

type deficitPlanInput struct {
	WeightToLoseKG float64 `json:"weight_to_lose_kg"`
	Weeks          int     `json:"weeks"`
}

// BuildDeficitPlan derives a calorie target from the user's profile and the
// requested loss; the target is returned, not silently written to the
// profile.
func (handler *Handler) BuildDeficitPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input deficitPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	targets, plan, err := handler.goals.PlanTargets(user, input.WeightToLoseKG, input.Weeks, now(handler))
	if err != nil {
		if errors.Is(err, services.ErrPlanDurationZero) {
			return apiError(c, fiber.StatusBadRequest, "weeks must be at least 1")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build plan")
	}
	return c.JSON(fiber.Map{"plan": plan, "targets": fiber.Map{
		"calorie_goal":       targets.CalorieGoal,
		"sleep_goal_minutes": targets.SleepGoalMinutes,
	}})
}
