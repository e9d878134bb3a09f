package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	parentModel "schoolhub_backend/internals/features/academics/parent/model"
	studentModel "schoolhub_backend/internals/features/academics/student/model"
	teacherModel "schoolhub_backend/internals/features/academics/teacher/model"
	"schoolhub_backend/internals/features/users/auth/dto"
	"schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// =============================
// Register
// =============================
// POST /api/auth/register — creates the users row and the role-specific
// extension row in a single transaction.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	err := ctrl.DB.WithContext(c.Context()).Where("email = ?", body.Email).First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusBadRequest, "User already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("[ERROR] register lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	eduSystem := body.EducationSystem
	if eduSystem == "" {
		eduSystem = "anglophone"
	}
	user := userModel.UserModel{
		Email:           body.Email,
		Password:        hash,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Role:            body.Role,
		Phone:           body.Phone,
		IsActive:        true,
		SchoolID:        body.SchoolID,
		EducationSystem: eduSystem,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch body.Role {
		case constants.RoleTeacher:
			return tx.Create(&teacherModel.TeacherModel{
				UserID:     user.ID,
				EmployeeID: body.EmployeeID,
				Department: body.Department,
				SchoolID:   body.SchoolID,
			}).Error
		case constants.RoleStudent:
			sid := user.Email
			if body.StudentID != nil {
				sid = *body.StudentID
			}
			return tx.Create(&studentModel.StudentModel{
				UserID:     user.ID,
				StudentID:  sid,
				GradeLevel: body.GradeLevel,
				SchoolID:   body.SchoolID,
			}).Error
		case constants.RoleParent:
			return tx.Create(&parentModel.ParentModel{
				UserID:     user.ID,
				Occupation: body.Occupation,
				Workplace:  body.Workplace,
				SchoolID:   body.SchoolID,
			}).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "User registered successfully", fiber.Map{
		"token": token,
		"user":  dto.ToUserResponse(&user),
	})
}

// =============================
// Login
// =============================
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := service.CheckPassword(user.Password, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account is deactivated.")
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToUserResponse(&user),
	})
}

// =============================
// Me
// =============================
// GET /api/auth/me — current principal, straight from the DB row.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, helper.GetUserID(c)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"user": dto.ToUserResponse(&user)})
}

// =============================
// Change password
// =============================
// PUT /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, helper.GetUserID(c)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token. User not found.")
	}

	if err := service.CheckPassword(user.Password, body.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&user).Update("password", hash).Error; err != nil {
		log.Printf("[ERROR] change password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonMessage(c, "Password changed successfully")
}
