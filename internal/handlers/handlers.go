package handlers

import (
	"fmt"
	"log"
	"net/http"

	"gymdesk/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto its taxonomy status and the JSON
// error envelope. Unexpected errors are logged and masked as 500.
func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(apperrors.Envelope(err))
}

// respondValidation turns validator failures into a 400 with a per-field map.
func respondValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "validation failed",
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "validation failed",
		"details": errorMessages,
	})
}

// respondBadBody is the shared response for unparseable request bodies.
func respondBadBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body",
	})
}
