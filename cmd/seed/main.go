// Seeds the bootstrap super admin account. Safe to run repeatedly: if
// the email already exists nothing is written.
package main

import (
	"log"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

func main() {
	configs.LoadEnv()

	if err := database.ConnectDB(); err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	email := configs.GetEnv("SUPER_ADMIN_EMAIL", "admin@schoolhub.local")
	password := configs.GetEnv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SUPER_ADMIN_PASSWORD is required")
	}

	var count int64
	if err := database.DB.Model(&userModel.UserModel{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatalf("lookup super admin: %v", err)
	}
	if count > 0 {
		log.Printf("[INFO] Super admin %s already exists, nothing to do", email)
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := userModel.UserModel{
		Email:     email,
		Password:  hash,
		FirstName: configs.GetEnv("SUPER_ADMIN_FIRST_NAME", "Super"),
		LastName:  configs.GetEnv("SUPER_ADMIN_LAST_NAME", "Admin"),
		Role:      "super_admin",
		IsActive:  true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("create super admin: %v", err)
	}

	log.Printf("[INFO] Super admin %s created (id=%d)", email, admin.ID)
}
