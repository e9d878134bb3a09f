package tenant

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
)

// TenantMiddleware derives the tenant context from the principal. Super admins
// see everything; everyone else is pinned to their school.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetUserRole(c) == constants.RoleSuperAdmin {
			return c.Next()
		}
		// school_id / education_system locals are already set by the auth
		// middleware; nothing extra to resolve here.
		return c.Next()
	}
}

// Scope returns a GORM scope restricting a query to the principal's school.
// The predicate is parameterized; super admins get an unrestricted scope.
func Scope(c *fiber.Ctx) func(*gorm.DB) *gorm.DB {
	return ScopeColumn(c, "school_id")
}

// ScopeColumn is Scope with an explicit column, for joined queries where the
// tenant column is qualified (e.g. "users.school_id").
func ScopeColumn(c *fiber.Ctx, column string) func(*gorm.DB) *gorm.DB {
	if helper.GetUserRole(c) == constants.RoleSuperAdmin {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	schoolID := helper.GetSchoolID(c)
	if schoolID == nil {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", *schoolID)
	}
}
