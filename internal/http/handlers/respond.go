package handlers

import (
	"errors"

	"zosswater/internal/domain"
	applog "zosswater/internal/log"

	"github.com/gofiber/fiber/v2"
)

// All endpoints answer with the same envelope: {success, message?, data?}.

func ok(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMsg(c *fiber.Ctx, message string, data fiber.Map) error {
	body := fiber.Map{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(body)
}

func created(c *fiber.Ctx, message string, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true, "message": message, "data": data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// failErr maps the error taxonomy onto statuses and logs server faults.
// Taxonomy details are safe to echo; anything else gets a generic message.
func failErr(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return fail(c, fiber.StatusConflict, err.Error())
	default:
		applog.Error(c, action, err, nil)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
