package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "elearn_backend/internals/features/certificates/controller"
	certService "elearn_backend/internals/features/certificates/service"
	materialController "elearn_backend/internals/features/courses/material/controller"
	materialService "elearn_backend/internals/features/courses/material/service"
	enrollController "elearn_backend/internals/features/enrollments/controller"
	enrollService "elearn_backend/internals/features/enrollments/service"
	quizController "elearn_backend/internals/features/quizzes/controller"
	quizService "elearn_backend/internals/features/quizzes/service"
)

// Semua route di sini sudah di belakang AuthMiddleware + OnlyRoles(student).
func StudentRoutes(
	api fiber.Router,
	db *gorm.DB,
	materials *materialService.MaterialService,
	enrollments *enrollService.EnrollmentService,
	quizzes *quizService.QuizService,
	certificates *certService.CertificateService,
) {
	enrollCtrl := enrollController.NewEnrollmentController(db, enrollments)
	materialCtrl := materialController.NewMaterialController(db, materials, enrollments)
	quizUserCtrl := quizController.NewQuizUserController(db, quizzes, enrollments)
	certCtrl := certController.NewCertificateController(db, certificates)

	// 🎓 Enrollment & progress
	api.Post("/courses/:courseId/enroll", enrollCtrl.Enroll)
	api.Get("/my-courses", enrollCtrl.MyCourses)
	api.Get("/courses/:courseId/progress", enrollCtrl.GetProgress)
	api.Get("/courses/:courseId/can-take-quiz", enrollCtrl.CanTakeQuiz)
	api.Post("/courses/:courseId/recheck", enrollCtrl.Recheck)

	// 📖 Materi
	api.Get("/courses/:courseId/materials", materialCtrl.GetCourseMaterials)
	api.Post("/materials/:id/complete", materialCtrl.MarkCompleted)

	// 📝 Quiz
	api.Get("/courses/:courseId/quiz", quizUserCtrl.GetQuestions)
	api.Post("/courses/:courseId/quiz/submit", quizUserCtrl.SubmitQuiz)
	api.Get("/courses/:courseId/quiz/results", quizUserCtrl.GetResults)

	// 🏆 Sertifikat
	api.Get("/certificates", certCtrl.GetMyCertificates)
	api.Get("/certificates/:id", certCtrl.GetCertificateByID)
}
