package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
)

// OnlyRoles rejects the request with 403 unless the principal's role is in
// the allowed set. Must run after AuthMiddleware.
func OnlyRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied. No user found.")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}
}

// Convenience compositions used across the resource routers.
func AdminOnly() fiber.Handler {
	return OnlyRoles(constants.AdminRoles...)
}

func TeacherOrAdmin() fiber.Handler {
	return OnlyRoles(constants.TeacherAndAbove...)
}

func StudentTeacherOrAdmin() fiber.Handler {
	return OnlyRoles(constants.StudentTeacherAndAbove...)
}
