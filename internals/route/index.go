package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "schoolhub_backend/internals/features/academics/classes/route"
	gradeRoute "schoolhub_backend/internals/features/academics/grade/route"
	lessonPlanRoute "schoolhub_backend/internals/features/academics/lessonplan/route"
	parentRoute "schoolhub_backend/internals/features/academics/parent/route"
	studentRoute "schoolhub_backend/internals/features/academics/student/route"
	teacherRoute "schoolhub_backend/internals/features/academics/teacher/route"
	quizRoute "schoolhub_backend/internals/features/assessments/quiz/route"
	cmsRoute "schoolhub_backend/internals/features/cms/route"
	fileRoute "schoolhub_backend/internals/features/files/file/route"
	notificationRoute "schoolhub_backend/internals/features/notifications/route"
	schoolRoute "schoolhub_backend/internals/features/schools/school/route"
	subjectRoute "schoolhub_backend/internals/features/schools/subject/route"
	authRoute "schoolhub_backend/internals/features/users/auth/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature router under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	schoolRoute.SchoolRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	parentRoute.ParentRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)
	quizRoute.QuizRoutes(api, db)
	lessonPlanRoute.LessonPlanRoutes(api, db)
	fileRoute.FileRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
	cmsRoute.CMSRoutes(api, db)
}
