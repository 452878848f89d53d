package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/voltshift/ampere/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	username, password, err := services.NormalizeCredentialsInput(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}
	email, err := services.NormalizeEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}

	handler.ensureDependencies()
	account, err := handler.authService.Register(username, password, email)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusConflict, "username already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	// Registration logs the new user in immediately.
	if err := handler.setAuthCookie(c, account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": account})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	username, password, err := services.NormalizeCredentialsInput(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	handler.ensureDependencies()
	account, err := handler.authService.Login(username, password)
	if err != nil {
		// Not-found and bad-password stay distinguishable in the log but
		// collapse to one message for the client.
		log.Printf("login rejected for %q: %v", username, err)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"user": account})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
