package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Keys set by the auth middleware on c.Locals.
const (
	LocalsUserID          = "user_id"
	LocalsUserEmail       = "user_email"
	LocalsUserRole        = "user_role"
	LocalsSchoolID        = "school_id"
	LocalsEducationSystem = "education_system"
)

// GetUserID returns the authenticated principal's id, 0 when unauthenticated.
func GetUserID(c *fiber.Ctx) uint {
	if v, ok := c.Locals(LocalsUserID).(uint); ok {
		return v
	}
	return 0
}

func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsUserRole).(string); ok {
		return v
	}
	return ""
}

func GetUserEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsUserEmail).(string); ok {
		return v
	}
	return ""
}

// GetSchoolID returns the tenant school id attached by the auth middleware,
// nil for super_admin or users without a school.
func GetSchoolID(c *fiber.Ctx) *uint {
	if v, ok := c.Locals(LocalsSchoolID).(uint); ok {
		return &v
	}
	return nil
}

func GetEducationSystem(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsEducationSystem).(string); ok && v != "" {
		return v
	}
	return "anglophone"
}
