package dto

import (
	"github.com/google/uuid"

	"elearn_backend/internals/features/quizzes/model"
)

type CreateQuizQuestionRequest struct {
	QuizQuestionText          string `json:"quiz_question_text" validate:"required"`
	QuizQuestionOptionA       string `json:"quiz_question_option_a" validate:"required"`
	QuizQuestionOptionB       string `json:"quiz_question_option_b" validate:"required"`
	QuizQuestionOptionC       string `json:"quiz_question_option_c" validate:"required"`
	QuizQuestionOptionD       string `json:"quiz_question_option_d" validate:"required"`
	QuizQuestionCorrectOption string `json:"quiz_question_correct_option" validate:"required,oneof=A B C D a b c d"`
}

type UpdateQuizQuestionRequest struct {
	QuizQuestionText          *string `json:"quiz_question_text"`
	QuizQuestionOptionA       *string `json:"quiz_question_option_a"`
	QuizQuestionOptionB       *string `json:"quiz_question_option_b"`
	QuizQuestionOptionC       *string `json:"quiz_question_option_c"`
	QuizQuestionOptionD       *string `json:"quiz_question_option_d"`
	QuizQuestionCorrectOption *string `json:"quiz_question_correct_option" validate:"omitempty,oneof=A B C D a b c d"`
}

// SubmitQuizRequest: jawaban urut sesuai urutan soal yang dirender.
type SubmitQuizRequest struct {
	Answers []string `json:"answers" validate:"required"`
}

// AdminQuizQuestionDTO menyertakan kunci jawaban (hanya untuk admin).
type AdminQuizQuestionDTO struct {
	QuizQuestionID            uuid.UUID `json:"quiz_question_id"`
	QuizQuestionCourseID      uuid.UUID `json:"quiz_question_course_id"`
	QuizQuestionText          string    `json:"quiz_question_text"`
	QuizQuestionOptionA       string    `json:"quiz_question_option_a"`
	QuizQuestionOptionB       string    `json:"quiz_question_option_b"`
	QuizQuestionOptionC       string    `json:"quiz_question_option_c"`
	QuizQuestionOptionD       string    `json:"quiz_question_option_d"`
	QuizQuestionCorrectOption string    `json:"quiz_question_correct_option"`
}

func ToAdminQuizQuestionDTO(q model.QuizQuestionModel) AdminQuizQuestionDTO {
	return AdminQuizQuestionDTO{
		QuizQuestionID:            q.QuizQuestionID,
		QuizQuestionCourseID:      q.QuizQuestionCourseID,
		QuizQuestionText:          q.QuizQuestionText,
		QuizQuestionOptionA:       q.QuizQuestionOptionA,
		QuizQuestionOptionB:       q.QuizQuestionOptionB,
		QuizQuestionOptionC:       q.QuizQuestionOptionC,
		QuizQuestionOptionD:       q.QuizQuestionOptionD,
		QuizQuestionCorrectOption: q.QuizQuestionCorrectOption,
	}
}
