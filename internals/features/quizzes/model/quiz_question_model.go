package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizQuestionModel struct {
	QuizQuestionID       uuid.UUID `gorm:"column:quiz_question_id;type:uuid;primaryKey" json:"quiz_question_id"`
	QuizQuestionCourseID uuid.UUID `gorm:"column:quiz_question_course_id;type:uuid;not null;index" json:"quiz_question_course_id"`
	QuizQuestionText     string    `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionOptionA  string    `gorm:"column:quiz_question_option_a;type:text;not null" json:"quiz_question_option_a"`
	QuizQuestionOptionB  string    `gorm:"column:quiz_question_option_b;type:text;not null" json:"quiz_question_option_b"`
	QuizQuestionOptionC  string    `gorm:"column:quiz_question_option_c;type:text;not null" json:"quiz_question_option_c"`
	QuizQuestionOptionD  string    `gorm:"column:quiz_question_option_d;type:text;not null" json:"quiz_question_option_d"`
	// huruf jawaban benar: A/B/C/D
	QuizQuestionCorrectOption string `gorm:"column:quiz_question_correct_option;type:varchar(1);not null" json:"-"`

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

func (m *QuizQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizQuestionID == uuid.Nil {
		m.QuizQuestionID = uuid.New()
	}
	return nil
}
