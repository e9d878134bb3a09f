package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token, loads the referenced user and
// attaches the principal to c.Locals. Rejections mirror the SPA's expectations:
// 401 for missing/invalid/expired tokens and for inactive or deleted accounts.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired.")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token.")
		}

		userID, ok := extractUserID(claims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token.")
		}

		// Verify the user still exists and is active.
		var user userModel.UserModel
		if err := db.WithContext(c.Context()).
			Select("id", "email", "role", "is_active", "school_id", "education_system").
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token. User not found.")
			}
			log.Printf("[ERROR] auth user lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Account is deactivated.")
		}

		c.Locals(helper.LocalsUserID, user.ID)
		c.Locals(helper.LocalsUserEmail, user.Email)
		c.Locals(helper.LocalsUserRole, user.Role)
		if user.SchoolID != nil {
			c.Locals(helper.LocalsSchoolID, *user.SchoolID)
		}
		if user.EducationSystem != "" {
			c.Locals(helper.LocalsEducationSystem, user.EducationSystem)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return "", errors.New("missing authorization header")
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" || token == h {
		return "", errors.New("malformed authorization header")
	}
	return token, nil
}

func extractUserID(claims jwt.MapClaims) (uint, bool) {
	// JSON numbers decode as float64.
	switch v := claims["user_id"].(type) {
	case float64:
		if v > 0 {
			return uint(v), true
		}
	}
	return 0, false
}
