package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/tenant"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// List users
// =============================
// GET /api/users?page=&limit=&role=&search=
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{}).
		Scopes(tenant.Scope(c))
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"users":      dto.ToUserResponseList(users),
		"pagination": helper.BuildPagination(total, p),
	})
}

// =============================
// Get user by ID
// =============================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	r := dto.ToUserResponse(&user)
	return c.JSON(r)
}

// =============================
// Update user (partial)
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.FirstName != nil {
		user.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		user.LastName = *body.LastName
	}
	if body.Phone != nil {
		user.Phone = body.Phone
	}
	if body.Role != nil {
		user.Role = *body.Role
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Printf("[ERROR] update user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonMessage(c, "User updated successfully", fiber.Map{
		"user": dto.ToUserResponse(&user),
	})
}

// =============================
// Activate / deactivate
// =============================
func (ctrl *UserController) DeactivateUser(c *fiber.Ctx) error {
	return ctrl.setActive(c, false, "User deactivated successfully")
}

func (ctrl *UserController) ActivateUser(c *fiber.Ctx) error {
	return ctrl.setActive(c, true, "User activated successfully")
}

func (ctrl *UserController) setActive(c *fiber.Ctx, active bool, message string) error {
	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&user).Update("is_active", active).Error; err != nil {
		log.Printf("[ERROR] set active: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonMessage(c, message, fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}
