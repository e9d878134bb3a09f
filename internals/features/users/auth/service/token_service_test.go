package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &userModel.UserModel{ID: 42, Email: "t@example.com", Role: "teacher"}
	signed, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if claims["user_id"].(float64) != 42 {
		t.Errorf("user_id = %v, want 42", claims["user_id"])
	}
	if claims["role"] != "teacher" {
		t.Errorf("role = %v, want teacher", claims["role"])
	}
	if claims["email"] != "t@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash equals plaintext")
	}
	if err := CheckPassword(hash, "s3cret!"); err != nil {
		t.Errorf("CheckPassword(correct) = %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("CheckPassword(wrong) = nil, want error")
	}
}
