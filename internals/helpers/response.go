package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonError is the single error shape the SPA understands: {"error": "..."}.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// ValidationError maps validator.v10 failures to a 400 with field-level messages,
// mirroring express-validator's {errors: [...]} body.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make([]fiber.Map, 0, len(ve))
	for _, fe := range ve {
		fieldErrors = append(fieldErrors, fiber.Map{
			"field": fe.Field(),
			"rule":  fe.Tag(),
			"param": fe.Param(),
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
}

// JsonCreated wraps a 201 with the conventional message + payload body.
func JsonCreated(c *fiber.Ctx, message string, payload fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// JsonMessage is a 200 with just {"message": "..."} plus optional extras.
func JsonMessage(c *fiber.Ctx, message string, payload ...fiber.Map) error {
	body := fiber.Map{"message": message}
	if len(payload) > 0 {
		for k, v := range payload[0] {
			body[k] = v
		}
	}
	return c.JSON(body)
}
