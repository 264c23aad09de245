package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollService "elearn_backend/internals/features/enrollments/service"
	"elearn_backend/internals/features/quizzes/dto"
	quizService "elearn_backend/internals/features/quizzes/service"
	helper "elearn_backend/internals/helpers"
)

type QuizUserController struct {
	DB          *gorm.DB
	Quizzes     *quizService.QuizService
	Enrollments *enrollService.EnrollmentService
}

func NewQuizUserController(db *gorm.DB, quizzes *quizService.QuizService, enrollments *enrollService.EnrollmentService) *QuizUserController {
	return &QuizUserController{DB: db, Quizzes: quizzes, Enrollments: enrollments}
}

// GetQuestions: bank soal untuk dikerjakan. Kunci jawaban tidak ikut
// terserialisasi (json:"-" di model). Urutan soal = urutan penilaian.
func (ctrl *QuizUserController) GetQuestions(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	questions, err := ctrl.Quizzes.GetQuestions(courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.Success(c, "OK", questions)
}

// SubmitQuiz: gate dicek di sini (bukan di evaluator) — semua materi harus
// selesai sebelum attempt boleh dinilai.
func (ctrl *QuizUserController) SubmitQuiz(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if !ctrl.Enrollments.CanTakeQuiz(studentID, courseID) {
		return fiber.NewError(fiber.StatusForbidden, "Selesaikan semua materi dulu sebelum mengerjakan quiz")
	}

	score, err := ctrl.Quizzes.Evaluate(studentID, courseID, body.Answers)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to evaluate quiz")
	}

	best, err := ctrl.Quizzes.BestScore(studentID, courseID)
	if err != nil {
		best = score
	}

	return helper.Success(c, "Quiz dinilai", fiber.Map{
		"score":      score,
		"passed":     score >= 60,
		"best_score": best,
		"percentage": ctrl.Enrollments.CompletionPercentage(studentID, courseID),
	})
}

// GetResults: riwayat attempt + best score (best, bukan yang terakhir).
func (ctrl *QuizUserController) GetResults(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	results, err := ctrl.Quizzes.FindResults(studentID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}
	best, err := ctrl.Quizzes.BestScore(studentID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute best score")
	}

	return helper.Success(c, "OK", fiber.Map{
		"results":    results,
		"best_score": best,
		"passed":     best >= 60,
	})
}
