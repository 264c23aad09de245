package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"elearn_backend/internals/features/quizzes/dto"
	"elearn_backend/internals/features/quizzes/model"
	quizService "elearn_backend/internals/features/quizzes/service"
	helper "elearn_backend/internals/helpers"
)

var validate = validator.New()

type QuizAdminController struct {
	DB      *gorm.DB
	Quizzes *quizService.QuizService
}

func NewQuizAdminController(db *gorm.DB, quizzes *quizService.QuizService) *QuizAdminController {
	return &QuizAdminController{DB: db, Quizzes: quizzes}
}

func (ctrl *QuizAdminController) CreateQuestion(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	question := model.QuizQuestionModel{
		QuizQuestionCourseID:      courseID,
		QuizQuestionText:          body.QuizQuestionText,
		QuizQuestionOptionA:       body.QuizQuestionOptionA,
		QuizQuestionOptionB:       body.QuizQuestionOptionB,
		QuizQuestionOptionC:       body.QuizQuestionOptionC,
		QuizQuestionOptionD:       body.QuizQuestionOptionD,
		QuizQuestionCorrectOption: strings.ToUpper(strings.TrimSpace(body.QuizQuestionCorrectOption)),
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Soal dibuat", dto.ToAdminQuizQuestionDTO(question))
}

func (ctrl *QuizAdminController) GetQuestions(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	questions, err := ctrl.Quizzes.GetQuestions(courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	dtos := make([]dto.AdminQuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.ToAdminQuizQuestionDTO(q))
	}
	return helper.Success(c, "OK", dtos)
}

func (ctrl *QuizAdminController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.First(&question, "quiz_question_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	updates := map[string]interface{}{}
	if body.QuizQuestionText != nil {
		updates["quiz_question_text"] = *body.QuizQuestionText
	}
	if body.QuizQuestionOptionA != nil {
		updates["quiz_question_option_a"] = *body.QuizQuestionOptionA
	}
	if body.QuizQuestionOptionB != nil {
		updates["quiz_question_option_b"] = *body.QuizQuestionOptionB
	}
	if body.QuizQuestionOptionC != nil {
		updates["quiz_question_option_c"] = *body.QuizQuestionOptionC
	}
	if body.QuizQuestionOptionD != nil {
		updates["quiz_question_option_d"] = *body.QuizQuestionOptionD
	}
	if body.QuizQuestionCorrectOption != nil {
		updates["quiz_question_correct_option"] = strings.ToUpper(strings.TrimSpace(*body.QuizQuestionCorrectOption))
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&question).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update question")
		}
	}
	return helper.Success(c, "Soal diperbarui", dto.ToAdminQuizQuestionDTO(question))
}

func (ctrl *QuizAdminController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question ID")
	}

	if err := ctrl.DB.Delete(&model.QuizQuestionModel{}, "quiz_question_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.Success(c, "Soal dihapus", nil)
}
