package database

import (
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
	gradeModel "schoolhub_backend/internals/features/academics/grade/model"
	lessonPlanModel "schoolhub_backend/internals/features/academics/lessonplan/model"
	parentModel "schoolhub_backend/internals/features/academics/parent/model"
	studentModel "schoolhub_backend/internals/features/academics/student/model"
	teacherModel "schoolhub_backend/internals/features/academics/teacher/model"
	quizModel "schoolhub_backend/internals/features/assessments/quiz/model"
	cmsModel "schoolhub_backend/internals/features/cms/model"
	fileModel "schoolhub_backend/internals/features/files/file/model"
	notifModel "schoolhub_backend/internals/features/notifications/model"
	schoolModel "schoolhub_backend/internals/features/schools/school/model"
	subjectModel "schoolhub_backend/internals/features/schools/subject/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in sync. Order matters: referenced tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&parentModel.ParentModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&gradeModel.GradeModel{},
		&lessonPlanModel.LessonPlanModel{},
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizSubmissionModel{},
		&fileModel.FileModel{},
		&notifModel.NotificationModel{},
		&cmsModel.PremiumContentModel{},
		&cmsModel.SubscriptionPackageModel{},
		&cmsModel.PackageContentModel{},
		&cmsModel.SubscriptionModel{},
		&cmsModel.ContentSubscriptionModel{},
	)
}
