package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/voltshift/ampere/internal/models"
	"github.com/voltshift/ampere/internal/services"
)

func (handler *Handler) GetSchedules(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	schedules, err := handler.scheduleService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load schedules")
	}

	return c.JSON(fiber.Map{
		"schedules": schedules,
		"count":     len(schedules),
		"limit":     models.MaxSchedulesPerUser,
	})
}

func (handler *Handler) CreateSchedule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := schedulePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	scheduleID, err := handler.scheduleService.Create(user.ID, payload.toDraft())
	if err != nil {
		return scheduleWriteError(c, err, "failed to create schedule")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": scheduleID})
}

func (handler *Handler) UpdateSchedule(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	scheduleID, err := c.ParamsInt("id")
	if err != nil || scheduleID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	payload := schedulePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.scheduleService.Update(uint(scheduleID), payload.toDraft()); err != nil {
		return scheduleWriteError(c, err, "failed to update schedule")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteSchedule(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	scheduleID, err := c.ParamsInt("id")
	if err != nil || scheduleID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	handler.ensureDependencies()
	if err := handler.scheduleService.Delete(uint(scheduleID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete schedule")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func scheduleWriteError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrScheduleLimitReached):
		return apiError(c, fiber.StatusConflict, err.Error())
	case services.IsValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
