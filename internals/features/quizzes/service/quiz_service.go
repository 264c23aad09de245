package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollService "elearn_backend/internals/features/enrollments/service"
	"elearn_backend/internals/features/quizzes/model"
)

const passingScore = 60

// QuizService menilai attempt dan memiliki log hasil quiz (append-only).
type QuizService struct {
	DB          *gorm.DB
	Enrollments *enrollService.EnrollmentService
}

func NewQuizService(db *gorm.DB, enrollments *enrollService.EnrollmentService) *QuizService {
	return &QuizService{DB: db, Enrollments: enrollments}
}

// GetQuestions mengembalikan bank soal dengan urutan stabil; jawaban dicocokkan
// posisional terhadap urutan ini.
func (s *QuizService) GetQuestions(courseID uuid.UUID) ([]model.QuizQuestionModel, error) {
	var questions []model.QuizQuestionModel
	err := s.DB.
		Where("quiz_question_course_id = ?", courseID).
		Order("quiz_question_created_at ASC, quiz_question_id ASC").
		Find(&questions).Error
	return questions, err
}

// Evaluate menilai jawaban posisional, menyimpan QuizResult baru (termasuk
// attempt gagal), lalu kalau lulus memicu pengecekan completion course.
//   - bank soal kosong → skor 0 tanpa baris hasil
//   - jawaban lebih pendek dari soal → sisanya dihitung salah
//   - perbandingan huruf: trim + case-insensitive
func (s *QuizService) Evaluate(studentID, courseID uuid.UUID, answers []string) (int, error) {
	questions, err := s.GetQuestions(courseID)
	if err != nil {
		return 0, fmt.Errorf("gagal ambil bank soal: %w", err)
	}
	if len(questions) == 0 {
		return 0, nil
	}

	correct := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		expected := strings.TrimSpace(q.QuizQuestionCorrectOption)
		given := strings.TrimSpace(answers[i])
		if expected != "" && strings.EqualFold(expected, given) {
			correct++
		}
	}

	score := int(math.Round(float64(correct) * 100.0 / float64(len(questions))))

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return 0, fmt.Errorf("gagal encode jawaban: %w", err)
	}
	result := model.QuizResultModel{
		QuizResultStudentID: studentID,
		QuizResultCourseID:  courseID,
		QuizResultScore:     score,
		QuizResultAnswers:   answersJSON,
	}
	if err := s.DB.Create(&result).Error; err != nil {
		return 0, fmt.Errorf("gagal simpan hasil quiz: %w", err)
	}

	if score >= passingScore {
		if _, err := s.Enrollments.CheckAndComplete(studentID, courseID); err != nil {
			// skor sudah tercatat; completion akan dicek ulang oleh trigger lain
			log.Printf("[WARN] CheckAndComplete setelah quiz lulus gagal: %v", err)
		}
	}
	return score, nil
}

// BestScore: skor tertinggi dari seluruh attempt, bukan attempt terakhir.
func (s *QuizService) BestScore(studentID, courseID uuid.UUID) (int, error) {
	var best *int
	err := s.DB.Model(&model.QuizResultModel{}).
		Where("quiz_result_student_id = ? AND quiz_result_course_id = ?", studentID, courseID).
		Select("MAX(quiz_result_score)").
		Scan(&best).Error
	if err != nil {
		return 0, fmt.Errorf("gagal hitung best score: %w", err)
	}
	if best == nil {
		return 0, nil
	}
	return *best, nil
}

func (s *QuizService) HasPassed(studentID, courseID uuid.UUID) (bool, error) {
	best, err := s.BestScore(studentID, courseID)
	if err != nil {
		return false, err
	}
	return best >= passingScore, nil
}

// FindResults: riwayat attempt untuk satu (student, course).
func (s *QuizService) FindResults(studentID, courseID uuid.UUID) ([]model.QuizResultModel, error) {
	var results []model.QuizResultModel
	err := s.DB.
		Where("quiz_result_student_id = ? AND quiz_result_course_id = ?", studentID, courseID).
		Order("quiz_result_attempted_at DESC").
		Find(&results).Error
	return results, err
}
