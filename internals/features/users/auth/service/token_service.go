package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// GenerateToken issues the HS256 access token carried by the SPA.
func GenerateToken(user *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
