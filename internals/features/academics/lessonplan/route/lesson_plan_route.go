package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/lessonplan/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func LessonPlanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonPlanController(db)

	plans := api.Group("/lesson-plans", authMw.AuthMiddleware(db), authMw.TeacherOrAdmin())
	plans.Get("/", ctrl.GetLessonPlans)
	plans.Get("/stats/overview", ctrl.GetLessonPlanStats)
	plans.Get("/teacher/:teacherId", ctrl.GetTeacherLessonPlans)
	plans.Get("/class/:classId", ctrl.GetClassLessonPlans)
	plans.Get("/:id", ctrl.GetLessonPlanByID)
	plans.Post("/", ctrl.CreateLessonPlan)
	plans.Put("/:id", ctrl.UpdateLessonPlan)
	plans.Delete("/:id", ctrl.DeleteLessonPlan)
}
