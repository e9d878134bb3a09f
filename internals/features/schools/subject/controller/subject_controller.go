package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/schools/subject/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/tenant"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

type subjectRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	SchoolID    *uint   `json:"schoolId"`
}

// GET /api/subjects
func (ctrl *SubjectController) GetSubjects(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Scopes(tenant.Scope(c))
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	var subjects []model.SubjectModel
	if err := q.Order("name").Find(&subjects).Error; err != nil {
		log.Printf("[ERROR] list subjects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

// GET /api/subjects/:id
func (ctrl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return c.JSON(subject)
}

// POST /api/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var body subjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID := body.SchoolID
	if schoolID == nil {
		schoolID = helper.GetSchoolID(c)
	}
	subject := model.SubjectModel{
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
		SchoolID:    schoolID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		log.Printf("[ERROR] create subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created successfully", fiber.Map{
		"subject": subject,
	})
}

// PUT /api/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	var body subjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	subject.Name = body.Name
	subject.Code = body.Code
	subject.Description = body.Description
	if err := ctrl.DB.WithContext(c.Context()).Save(&subject).Error; err != nil {
		log.Printf("[ERROR] update subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonMessage(c, "Subject updated successfully", fiber.Map{
		"subject": subject,
	})
}

// DELETE /api/subjects/:id
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Delete(&model.SubjectModel{}, c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete subject: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonMessage(c, "Subject deleted successfully")
}
