package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/dto"
	"schoolhub_backend/internals/features/cms/model"
	"schoolhub_backend/internals/features/files/file/service"
	helper "schoolhub_backend/internals/helpers"
)

type CMSController struct {
	DB *gorm.DB
}

func NewCMSController(db *gorm.DB) *CMSController {
	return &CMSController{DB: db}
}

var validate = validator.New()

// =============================
// Premium content
// =============================
// POST /api/cms/content — multipart form, the file part is optional.
func (ctrl *CMSController) CreateContent(c *fiber.Ctx) error {
	var body dto.CreateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.EducationSystem == "" {
		body.EducationSystem = "anglophone"
	}

	var filePath *string
	if header, err := c.FormFile("file"); err == nil && header != nil {
		if err := service.ValidateContentUpload(header); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		stored, err := service.StoreUpload(header, service.ContentDir())
		if err != nil {
			log.Printf("[ERROR] store content file: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create content")
		}
		filePath = &stored.Path
	}

	content := model.PremiumContentModel{
		Title:           body.Title,
		Description:     body.Description,
		ContentType:     body.ContentType,
		Subject:         body.Subject,
		ClassLevel:      body.ClassLevel,
		EducationSystem: body.EducationSystem,
		IsPremium:       body.IsPremium,
		Price:           body.Price,
		FilePath:        filePath,
		CreatedBy:       helper.GetUserID(c),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&content).Error; err != nil {
		log.Printf("[ERROR] create content: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create content")
	}

	return helper.JsonCreated(c, "Content created successfully", fiber.Map{
		"content": content,
	})
}

// GET /api/cms/content?content_type=&education_system=&is_premium=
func (ctrl *CMSController) GetContent(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.PremiumContentModel{})
	if v := c.Query("content_type"); v != "" {
		q = q.Where("premium_content.content_type = ?", v)
	}
	if v := c.Query("education_system"); v != "" {
		q = q.Where("premium_content.education_system = ?", v)
	}
	if v := c.Query("is_premium"); v != "" {
		q = q.Where("premium_content.is_premium = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count content: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch content")
	}

	var rows []dto.ContentRow
	err := q.Select(`premium_content.*, u.first_name, u.last_name,
			COUNT(s.id) AS subscription_count`).
		Joins("LEFT JOIN users u ON premium_content.created_by = u.id").
		Joins("LEFT JOIN content_subscriptions s ON premium_content.id = s.content_id").
		Group("premium_content.id, u.first_name, u.last_name").
		Order("premium_content.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] list content: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch content")
	}

	return c.JSON(fiber.Map{
		"content":    rows,
		"pagination": helper.BuildSimplePagination(total, p),
	})
}

// =============================
// Subscription packages
// =============================
// POST /api/cms/packages — the package row and its package_content
// links land in a single transaction.
func (ctrl *CMSController) CreatePackage(c *fiber.Ctx) error {
	var body dto.CreatePackageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	pkg := model.SubscriptionPackageModel{
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		DurationDays: body.DurationDays,
		CreatedBy:    helper.GetUserID(c),
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pkg).Error; err != nil {
			return err
		}
		if len(body.ContentIDs) == 0 {
			return nil
		}
		links := make([]model.PackageContentModel, 0, len(body.ContentIDs))
		for _, contentID := range body.ContentIDs {
			links = append(links, model.PackageContentModel{
				PackageID: pkg.ID,
				ContentID: contentID,
			})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		log.Printf("[ERROR] create package: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create package")
	}

	return helper.JsonCreated(c, "Package created successfully", fiber.Map{
		"package": pkg,
	})
}

// GET /api/cms/packages
func (ctrl *CMSController) GetPackages(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	var rows []dto.PackageRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.SubscriptionPackageModel{}).
		Select(`subscription_packages.*, u.first_name, u.last_name,
			COUNT(s.id) AS active_subscriptions`).
		Joins("LEFT JOIN users u ON subscription_packages.created_by = u.id").
		Joins("LEFT JOIN subscriptions s ON subscription_packages.id = s.package_id AND s.status = 'active'").
		Group("subscription_packages.id, u.first_name, u.last_name").
		Order("subscription_packages.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] list packages: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch packages")
	}

	return c.JSON(fiber.Map{
		"packages": rows,
		"pagination": fiber.Map{
			"page":  p.Page,
			"limit": p.Limit,
		},
	})
}

// =============================
// Analytics
// =============================
// GET /api/cms/analytics?period=30 — period is days.
func (ctrl *CMSController) GetAnalytics(c *fiber.Ctx) error {
	period, err := strconv.Atoi(c.Query("period", "30"))
	if err != nil || period < 1 {
		period = 30
	}

	db := ctrl.DB.WithContext(c.Context())

	var kpis dto.AnalyticsKPIs
	if err := db.Table("schools").Where("is_active = true").Count(&kpis.TotalSchools).Error; err != nil {
		log.Printf("[ERROR] analytics kpis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}
	if err := db.Table("users").Where("is_active = true").Count(&kpis.TotalUsers).Error; err != nil {
		log.Printf("[ERROR] analytics kpis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}
	if err := db.Table("premium_content").Count(&kpis.TotalContent).Error; err != nil {
		log.Printf("[ERROR] analytics kpis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}
	if err := db.Table("subscriptions").Where("status = ?", "active").Count(&kpis.ActiveSubscriptions).Error; err != nil {
		log.Printf("[ERROR] analytics kpis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}

	var revenue dto.AnalyticsRevenue
	if err := db.Raw(`
		SELECT
			COALESCE(SUM(amount), 0) AS total_revenue,
			COUNT(*) AS total_transactions
		FROM subscriptions
		WHERE status = 'active' AND created_at >= NOW() - make_interval(days => ?)
	`, period).Scan(&revenue).Error; err != nil {
		log.Printf("[ERROR] analytics revenue: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}

	performance := []dto.ContentPerformanceRow{}
	if err := db.Raw(`
		SELECT
			pc.content_type,
			COUNT(s.id) AS subscription_count,
			COALESCE(SUM(pc.price), 0) AS revenue
		FROM premium_content pc
		LEFT JOIN content_subscriptions s ON pc.id = s.content_id
		WHERE pc.created_at >= NOW() - make_interval(days => ?)
		GROUP BY pc.content_type
	`, period).Scan(&performance).Error; err != nil {
		log.Printf("[ERROR] analytics content performance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}

	return c.JSON(fiber.Map{
		"kpis":                kpis,
		"revenue":             revenue,
		"content_performance": performance,
	})
}
