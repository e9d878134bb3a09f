package controller

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/files/file/dto"
	"schoolhub_backend/internals/features/files/file/model"
	"schoolhub_backend/internals/features/files/file/service"
	helper "schoolhub_backend/internals/helpers"
)

type FileController struct {
	DB *gorm.DB
}

func NewFileController(db *gorm.DB) *FileController {
	return &FileController{DB: db}
}

var validate = validator.New()

const fileRowColumns = `files.*,
	users.first_name AS uploader_first_name, users.last_name AS uploader_last_name,
	schools.name AS school_name`

func fileRowQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.FileModel{}).
		Joins("LEFT JOIN users ON files.uploaded_by = users.id").
		Joins("LEFT JOIN schools ON files.school_id = schools.id")
}

// isUploaderOrAdmin gates metadata updates and deletion.
func isUploaderOrAdmin(c *fiber.Ctx, file *model.FileModel) bool {
	role := helper.GetUserRole(c)
	if role == constants.RoleSuperAdmin || role == constants.RoleSchoolAdmin || role == constants.RoleAdmin {
		return true
	}
	return file.UploadedBy == helper.GetUserID(c)
}

// =============================
// List files
// =============================
// GET /api/files?page=&limit=&search=&relatedType=&schoolId=
func (ctrl *FileController) GetFiles(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := fileRowQuery(ctrl.DB.WithContext(c.Context()))
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("files.original_name ILIKE ? OR files.filename ILIKE ?", like, like)
	}
	if relatedType := c.Query("relatedType"); relatedType != "" {
		q = q.Where("files.related_type = ?", relatedType)
	}
	if schoolID := c.Query("schoolId"); schoolID != "" {
		q = q.Where("files.school_id = ?", schoolID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count files: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch files")
	}

	var rows []dto.FileRow
	if err := q.Select(fileRowColumns).
		Order("files.created_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list files: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch files")
	}

	return c.JSON(fiber.Map{
		"files":      rows,
		"pagination": helper.BuildSimplePagination(total, p),
	})
}

// =============================
// Get file by ID
// =============================
func (ctrl *FileController) GetFileByID(c *fiber.Ctx) error {
	var row dto.FileRow
	err := fileRowQuery(ctrl.DB.WithContext(c.Context())).
		Select(fileRowColumns).
		Where("files.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch file")
	}
	return c.JSON(row)
}

// =============================
// Upload file
// =============================
// POST /api/files/upload — multipart field "file". Size and type checks
// run before anything is written to disk or the database.
func (ctrl *FileController) UploadFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	if err := service.ValidateUpload(header); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	relatedType := c.FormValue("relatedType", model.RelatedGeneral)
	if !model.IsValidRelatedType(relatedType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid related type")
	}
	var relatedID *uint
	if v := c.FormValue("relatedId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid related id")
		}
		id := uint(n)
		relatedID = &id
	}
	isPublic := c.FormValue("isPublic") == "true"

	stored, err := service.StoreUpload(header, service.UploadDir())
	if err != nil {
		log.Printf("[ERROR] store upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	file := model.FileModel{
		Filename:     stored.Filename,
		OriginalName: header.Filename,
		FilePath:     stored.Path,
		FileSize:     stored.Size,
		MimeType:     stored.MimeType,
		UploadedBy:   helper.GetUserID(c),
		RelatedType:  relatedType,
		RelatedID:    relatedID,
		SchoolID:     helper.GetSchoolID(c),
		IsPublic:     isPublic,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&file).Error; err != nil {
		log.Printf("[ERROR] create file row: %v", err)
		os.Remove(stored.Path)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return helper.JsonCreated(c, "File uploaded successfully", fiber.Map{
		"file": file,
	})
}

// =============================
// Download file
// =============================
// GET /api/files/:id/download — the disk object is only checked here.
func (ctrl *FileController) DownloadFile(c *fiber.Ctx) error {
	var file model.FileModel
	if err := ctrl.DB.WithContext(c.Context()).First(&file, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to download file")
	}

	if _, err := os.Stat(file.FilePath); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found on disk")
	}

	return c.Download(file.FilePath, file.OriginalName)
}

// =============================
// Update file metadata
// =============================
func (ctrl *FileController) UpdateFile(c *fiber.Ctx) error {
	var body dto.UpdateFileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var file model.FileModel
	if err := ctrl.DB.WithContext(c.Context()).First(&file, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update file")
	}
	if !isUploaderOrAdmin(c, &file) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this file")
	}

	if body.OriginalName != nil {
		file.OriginalName = *body.OriginalName
	}
	if body.RelatedType != nil {
		file.RelatedType = *body.RelatedType
	}
	if body.RelatedID != nil {
		file.RelatedID = body.RelatedID
	}
	if body.IsPublic != nil {
		file.IsPublic = *body.IsPublic
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&file).Error; err != nil {
		log.Printf("[ERROR] update file: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update file")
	}
	return helper.JsonMessage(c, "File updated successfully")
}

// =============================
// Delete file
// =============================
// Disk removal is best-effort; the row always goes.
func (ctrl *FileController) DeleteFile(c *fiber.Ctx) error {
	var file model.FileModel
	if err := ctrl.DB.WithContext(c.Context()).First(&file, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete file")
	}
	if !isUploaderOrAdmin(c, &file) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this file")
	}

	if err := os.Remove(file.FilePath); err != nil {
		log.Printf("[INFO] could not delete file from disk: %v", err)
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&file).Error; err != nil {
		log.Printf("[ERROR] delete file: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete file")
	}
	return helper.JsonMessage(c, "File deleted successfully")
}

// =============================
// File statistics
// =============================
// GET /api/files/stats/overview
func (ctrl *FileController) GetFileStats(c *fiber.Ctx) error {
	var stats dto.FileStats
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT
			COUNT(*) AS total_files,
			COALESCE(SUM(file_size), 0) AS total_size,
			COUNT(CASE WHEN mime_type LIKE 'image/%' THEN 1 END) AS image_count,
			COUNT(CASE WHEN mime_type = 'application/pdf' THEN 1 END) AS pdf_count,
			COUNT(CASE WHEN mime_type LIKE 'application/msword%' THEN 1 END) AS doc_count,
			COUNT(CASE WHEN mime_type LIKE 'video/%' THEN 1 END) AS video_count,
			COUNT(CASE WHEN mime_type LIKE 'audio/%' THEN 1 END) AS audio_count
		FROM files
	`).Scan(&stats).Error
	if err != nil {
		log.Printf("[ERROR] file stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch file statistics")
	}
	return c.JSON(stats)
}
