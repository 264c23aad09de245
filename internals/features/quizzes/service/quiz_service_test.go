package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "elearn_backend/internals/databases"
	certModel "elearn_backend/internals/features/certificates/model"
	certService "elearn_backend/internals/features/certificates/service"
	enrollModel "elearn_backend/internals/features/enrollments/model"
	enrollService "elearn_backend/internals/features/enrollments/service"
	"elearn_backend/internals/features/quizzes/model"
)

func newTestService(t *testing.T) (*QuizService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)

	certs := certService.NewCertificateService(db, nil)
	enrollments := enrollService.NewEnrollmentService(db, certs)
	return NewQuizService(db, enrollments), db
}

// seedQuestions menanam soal dengan created_at naik supaya urutan penilaian
// posisional deterministik.
func seedQuestions(t *testing.T, db *gorm.DB, courseID uuid.UUID, correctOptions ...string) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i, opt := range correctOptions {
		q := model.QuizQuestionModel{
			QuizQuestionCourseID:      courseID,
			QuizQuestionText:          fmt.Sprintf("Soal nomor %d?", i+1),
			QuizQuestionOptionA:       "Pilihan A",
			QuizQuestionOptionB:       "Pilihan B",
			QuizQuestionOptionC:       "Pilihan C",
			QuizQuestionOptionD:       "Pilihan D",
			QuizQuestionCorrectOption: opt,
			QuizQuestionCreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(&q).Error)
	}
}

func TestEvaluatePositionalScoring(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	seedQuestions(t, db, courseID, "A", "B", "C", "D")

	// trim + case-insensitive; jawaban ketiga salah
	score, err := svc.Evaluate(studentID, courseID, []string{"a", " b ", "X", "d"})
	require.NoError(t, err)
	assert.Equal(t, 75, score)

	var results []model.QuizResultModel
	require.NoError(t, db.Find(&results).Error)
	require.Len(t, results, 1)
	assert.Equal(t, 75, results[0].QuizResultScore)
}

func TestEvaluateEmptyBank(t *testing.T) {
	svc, db := newTestService(t)

	score, err := svc.Evaluate(uuid.New(), uuid.New(), []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	// bank kosong tidak meninggalkan baris hasil
	var count int64
	require.NoError(t, db.Model(&model.QuizResultModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEvaluateShortAnswerList(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	seedQuestions(t, db, courseID, "A", "B", "C", "D")

	// soal tanpa jawaban dihitung salah
	score, err := svc.Evaluate(studentID, courseID, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 50, score)
}

func TestEvaluateRounding(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	seedQuestions(t, db, courseID, "A", "B", "C")

	// 2/3 = 66.67 → dibulatkan ke 67
	score, err := svc.Evaluate(studentID, courseID, []string{"A", "B", "D"})
	require.NoError(t, err)
	assert.Equal(t, 67, score)
}

func TestBestScoreAcrossAttempts(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	for _, score := range []int{40, 85, 60} {
		require.NoError(t, db.Create(&model.QuizResultModel{
			QuizResultStudentID: studentID,
			QuizResultCourseID:  courseID,
			QuizResultScore:     score,
		}).Error)
	}

	best, err := svc.BestScore(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 85, best)

	passed, err := svc.HasPassed(studentID, courseID)
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestBestScoreNoAttempts(t *testing.T) {
	svc, _ := newTestService(t)

	best, err := svc.BestScore(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestPassingAttemptTriggersCompletion(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	_, err := svc.Enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)

	// course tanpa materi: gate materi vacuous, lulus quiz langsung complete
	seedQuestions(t, db, courseID, "A", "B")

	score, err := svc.Evaluate(studentID, courseID, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	var enrollment enrollModel.EnrollmentModel
	require.NoError(t, db.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error)
	assert.Equal(t, enrollModel.StatusCompleted, enrollment.EnrollmentStatus)

	var certCount int64
	require.NoError(t, db.Model(&certModel.CertificateModel{}).Count(&certCount).Error)
	assert.EqualValues(t, 1, certCount)

	// attempt lulus kedua: hasil baru tercatat, sertifikat tetap satu
	_, err = svc.Evaluate(studentID, courseID, []string{"A", "B"})
	require.NoError(t, err)

	var resultCount int64
	require.NoError(t, db.Model(&model.QuizResultModel{}).Count(&resultCount).Error)
	assert.EqualValues(t, 2, resultCount)
	require.NoError(t, db.Model(&certModel.CertificateModel{}).Count(&certCount).Error)
	assert.EqualValues(t, 1, certCount)
}

func TestFailingAttemptDoesNotRegressStatus(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	_, err := svc.Enrollments.Enroll(studentID, courseID)
	require.NoError(t, err)
	seedQuestions(t, db, courseID, "A", "B")

	_, err = svc.Evaluate(studentID, courseID, []string{"A", "B"})
	require.NoError(t, err)

	// attempt gagal setelah complete: tercatat, status dan persentase tidak turun
	score, err := svc.Evaluate(studentID, courseID, []string{"C", "D"})
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	var enrollment enrollModel.EnrollmentModel
	require.NoError(t, db.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error)
	assert.Equal(t, enrollModel.StatusCompleted, enrollment.EnrollmentStatus)
	assert.Equal(t, 100.0, svc.Enrollments.CompletionPercentage(studentID, courseID))
}
