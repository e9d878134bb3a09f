package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/files/file/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func FileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFileController(db)

	files := api.Group("/files", authMw.AuthMiddleware(db))
	files.Get("/", authMw.TeacherOrAdmin(), ctrl.GetFiles)
	files.Get("/stats/overview", authMw.TeacherOrAdmin(), ctrl.GetFileStats)
	files.Get("/:id", authMw.TeacherOrAdmin(), ctrl.GetFileByID)
	files.Get("/:id/download", authMw.TeacherOrAdmin(), ctrl.DownloadFile)
	files.Post("/upload", ctrl.UploadFile)
	files.Put("/:id", authMw.TeacherOrAdmin(), ctrl.UpdateFile)
	files.Delete("/:id", authMw.TeacherOrAdmin(), ctrl.DeleteFile)
}
