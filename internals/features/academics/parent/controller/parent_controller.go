package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/academics/parent/dto"
	"schoolhub_backend/internals/features/academics/parent/model"
	studentModel "schoolhub_backend/internals/features/academics/student/model"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

var validate = validator.New()

const parentRowColumns = `parents.id, parents.user_id, parents.occupation, parents.workplace,
	parents.school_id, parents.created_at,
	users.first_name, users.last_name, users.email, users.phone, users.is_active,
	schools.name AS school_name`

const childRowColumns = `students.id, students.student_id, students.grade_level,
	users.first_name, users.last_name, users.email,
	classes.name AS class_name, schools.name AS school_name`

// =============================
// List parents
// =============================
// GET /api/parents?page=&limit=&search=
func (ctrl *ParentController) GetParents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ParentModel{}).
		Joins("JOIN users ON parents.user_id = users.id").
		Joins("LEFT JOIN schools ON parents.school_id = schools.id")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.email ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count parents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parents")
	}

	var rows []dto.ParentRow
	if err := q.Select(parentRowColumns).
		Order("users.last_name, users.first_name").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list parents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parents")
	}

	return c.JSON(fiber.Map{
		"parents":    rows,
		"pagination": helper.BuildSimplePagination(total, p),
	})
}

// =============================
// Get parent by ID
// =============================
// The detail body carries the parent's children inline.
func (ctrl *ParentController) GetParentByID(c *fiber.Ctx) error {
	var row dto.ParentRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.ParentModel{}).
		Select(parentRowColumns).
		Joins("JOIN users ON parents.user_id = users.id").
		Joins("LEFT JOIN schools ON parents.school_id = schools.id").
		Where("parents.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	children, err := ctrl.childrenOf(c, row.ID)
	if err != nil {
		log.Printf("[ERROR] parent children: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	return c.JSON(fiber.Map{
		"parent":   row,
		"children": children,
	})
}

// =============================
// Create parent
// =============================
// Creates the user account and the parents row in one transaction.
func (ctrl *ParentController) CreateParent(c *fiber.Ctx) error {
	var body dto.CreateParentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("email = ?", body.Email).Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "User with this email already exists")
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}

	parent := model.ParentModel{
		Occupation: body.Occupation,
		Workplace:  body.Workplace,
		SchoolID:   body.SchoolID,
	}
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			Email:     body.Email,
			Password:  hash,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Phone:     body.Phone,
			Role:      constants.RoleParent,
			IsActive:  true,
			SchoolID:  body.SchoolID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		parent.UserID = user.ID
		return tx.Create(&parent).Error
	})
	if err != nil {
		log.Printf("[ERROR] create parent: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}

	return helper.JsonCreated(c, "Parent created successfully", fiber.Map{
		"parent": parent,
	})
}

// =============================
// Update parent
// =============================
// Name and phone live on the users row, the rest on parents.
func (ctrl *ParentController) UpdateParent(c *fiber.Ctx) error {
	var body dto.UpdateParentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var parent model.ParentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&parent, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if body.FirstName != nil {
			userUpdates["first_name"] = *body.FirstName
		}
		if body.LastName != nil {
			userUpdates["last_name"] = *body.LastName
		}
		if body.Phone != nil {
			userUpdates["phone"] = *body.Phone
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", parent.UserID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		if body.Occupation != nil {
			parent.Occupation = body.Occupation
		}
		if body.Workplace != nil {
			parent.Workplace = body.Workplace
		}
		if body.SchoolID != nil {
			parent.SchoolID = body.SchoolID
		}
		return tx.Save(&parent).Error
	})
	if err != nil {
		log.Printf("[ERROR] update parent: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parent")
	}

	return helper.JsonMessage(c, "Parent updated successfully")
}

// =============================
// Delete parent
// =============================
func (ctrl *ParentController) DeleteParent(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Delete(&model.ParentModel{}, c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete parent: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parent")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}
	return helper.JsonMessage(c, "Parent deleted successfully")
}

// =============================
// Parent's children
// =============================
// GET /api/parents/:id/children
func (ctrl *ParentController) GetParentChildren(c *fiber.Ctx) error {
	var parent model.ParentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&parent, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent children")
	}

	children, err := ctrl.childrenOf(c, parent.ID)
	if err != nil {
		log.Printf("[ERROR] parent children: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent children")
	}
	return c.JSON(fiber.Map{"children": children})
}

func (ctrl *ParentController) childrenOf(c *fiber.Ctx, parentID uint) ([]dto.ChildRow, error) {
	var children []dto.ChildRow
	err := ctrl.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{}).
		Select(childRowColumns).
		Joins("JOIN users ON students.user_id = users.id").
		Joins("LEFT JOIN classes ON students.class_id = classes.id").
		Joins("LEFT JOIN schools ON students.school_id = schools.id").
		Where("students.parent_id = ?", parentID).
		Order("users.last_name, users.first_name").
		Scan(&children).Error
	return children, err
}
