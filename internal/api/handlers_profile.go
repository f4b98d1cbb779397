package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
	"github.com/terraincognita07/vital/internal/services"
)

type profileResponse struct {
	Email            string  `json:"email"`
	Sex              string  `json:"sex"`
	HeightCM         float64 `json:"height_cm"`
	WeightKG         float64 `json:"weight_kg"`
	BirthYear        int     `json:"birth_year"`
	ActivityLevel    string  `json:"activity_level"`
	CalorieGoal      int     `json:"calorie_goal"`
	SleepGoalMinutes int     `json:"sleep_goal_minutes"`
}

func buildProfileResponse(user *models.User) profileResponse {
	return profileResponse{
		Email:            user.Email,
		Sex:              user.Sex,
		HeightCM:         user.HeightCM,
		WeightKG:         user.WeightKG,
		BirthYear:        user.BirthYear,
		ActivityLevel:    user.ActivityLevel,
		CalorieGoal:      user.CalorieGoal,
		SleepGoalMinutes: user.SleepGoalMinutes,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildProfileResponse(user))
}

type profileInput struct {
	Sex              string  `json:"sex"`
	HeightCM         float64 `json:"height_cm"`
	WeightKG         float64 `json:"weight_kg"`
	BirthYear        int     `json:"birth_year"`
	ActivityLevel    string  `json:"activity_level"`
	CalorieGoal      int     `json:"calorie_goal"`
	SleepGoalMinutes int     `json:"sleep_goal_minutes"`
}

// UpdateProfile replaces the tunable profile fields as a whole; partial
// updates would leave the energy calculators running on mixed generations of
// inputs.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	update := services.ProfileUpdate{
		Sex:              input.Sex,
		HeightCM:         input.HeightCM,
		WeightKG:         input.WeightKG,
		BirthYear:        input.BirthYear,
		ActivityLevel:    input.ActivityLevel,
		CalorieGoal:      input.CalorieGoal,
		SleepGoalMinutes: input.SleepGoalMinutes,
	}
	if err := handler.settings.SaveProfile(user.ID, update, now(handler)); err != nil {
		switch {
		case errors.Is(err, services.ErrProfileSexInvalid):
			return apiError(c, fiber.StatusBadRequest, "sex must be male or female")
		case errors.Is(err, services.ErrProfileActivityInvalid):
			return apiError(c, fiber.StatusBadRequest, "unknown activity level")
		case errors.Is(err, services.ErrProfileValueInvalid):
			return apiError(c, fiber.StatusBadRequest, "profile value out of range")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}

	updated, err := handler.auth.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(buildProfileResponse(&updated))
}
