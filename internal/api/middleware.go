package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

const (
	authCookieName = "vital_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
