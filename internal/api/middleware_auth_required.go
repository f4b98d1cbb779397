package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/vital/internal/models"
)

var errUnauthorized = errors.New("unauthorized")

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := c.Cookies(authCookieName)
	if rawToken == "" {
		return nil, errUnauthorized
	}

	claims := authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnauthorized
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, errUnauthorized
	}

	user, err := handler.auth.FindByID(claims.UserID)
	if err != nil {
		return nil, errUnauthorized
	}
	return &user, nil
}
