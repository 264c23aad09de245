package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "elearn_backend/internals/features/courses/course/controller"
	materialController "elearn_backend/internals/features/courses/material/controller"
	materialService "elearn_backend/internals/features/courses/material/service"
	enrollService "elearn_backend/internals/features/enrollments/service"
	quizController "elearn_backend/internals/features/quizzes/controller"
	quizService "elearn_backend/internals/features/quizzes/service"
)

// Semua route di sini sudah di belakang AuthMiddleware + OnlyRoles(admin).
func AdminRoutes(
	api fiber.Router,
	db *gorm.DB,
	materials *materialService.MaterialService,
	enrollments *enrollService.EnrollmentService,
	quizzes *quizService.QuizService,
) {
	courseCtrl := courseController.NewCourseController(db)
	materialCtrl := materialController.NewMaterialController(db, materials, enrollments)
	quizAdminCtrl := quizController.NewQuizAdminController(db, quizzes)

	// 📚 Course CRUD
	api.Post("/courses", courseCtrl.CreateCourse)
	api.Put("/courses/:id", courseCtrl.UpdateCourse)
	api.Delete("/courses/:id", courseCtrl.DeleteCourse)
	api.Post("/courses/:id/image", courseCtrl.UploadCourseImage)

	// 📖 Materi CRUD
	api.Post("/courses/:courseId/materials", materialCtrl.CreateMaterial)
	api.Put("/materials/:id", materialCtrl.UpdateMaterial)
	api.Delete("/materials/:id", materialCtrl.DeleteMaterial)

	// 📝 Bank soal quiz
	api.Get("/courses/:courseId/quiz", quizAdminCtrl.GetQuestions)
	api.Post("/courses/:courseId/quiz", quizAdminCtrl.CreateQuestion)
	api.Put("/quiz-questions/:id", quizAdminCtrl.UpdateQuestion)
	api.Delete("/quiz-questions/:id", quizAdminCtrl.DeleteQuestion)
}
