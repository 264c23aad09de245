package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResultModel append-only: setiap attempt jadi baris baru, tidak pernah
// di-update atau dihapus.
type QuizResultModel struct {
	QuizResultID        uuid.UUID `gorm:"column:quiz_result_id;type:uuid;primaryKey" json:"quiz_result_id"`
	QuizResultStudentID uuid.UUID `gorm:"column:quiz_result_student_id;type:uuid;not null;index:idx_quiz_result_student_course" json:"quiz_result_student_id"`
	QuizResultCourseID  uuid.UUID `gorm:"column:quiz_result_course_id;type:uuid;not null;index:idx_quiz_result_student_course" json:"quiz_result_course_id"`
	QuizResultScore     int       `gorm:"column:quiz_result_score;not null" json:"quiz_result_score"`
	// jawaban yang dikirim, urut sesuai soal
	QuizResultAnswers datatypes.JSON `gorm:"column:quiz_result_answers" json:"quiz_result_answers,omitempty"`

	QuizResultAttemptedAt time.Time `gorm:"column:quiz_result_attempted_at;autoCreateTime" json:"quiz_result_attempted_at"`
}

func (QuizResultModel) TableName() string {
	return "quiz_results"
}

func (m *QuizResultModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizResultID == uuid.Nil {
		m.QuizResultID = uuid.New()
	}
	return nil
}
