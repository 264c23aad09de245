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
	materialModel "elearn_backend/internals/features/courses/material/model"
	"elearn_backend/internals/features/enrollments/model"
	quizModel "elearn_backend/internals/features/quizzes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func newTestService(t *testing.T) (*EnrollmentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	certs := certService.NewCertificateService(db, nil)
	return NewEnrollmentService(db, certs), db
}

func seedMaterials(t *testing.T, db *gorm.DB, courseID uuid.UUID, n int) []materialModel.MaterialModel {
	t.Helper()
	materials := make([]materialModel.MaterialModel, 0, n)
	for i := 0; i < n; i++ {
		content := fmt.Sprintf("materi ke-%d", i+1)
		m := materialModel.MaterialModel{
			MaterialCourseID: courseID,
			MaterialName:     fmt.Sprintf("Materi %d", i+1),
			MaterialKind:     materialModel.MaterialKindText,
			MaterialContent:  &content,
		}
		require.NoError(t, db.Create(&m).Error)
		materials = append(materials, m)
	}
	return materials
}

func completeMaterial(t *testing.T, db *gorm.DB, studentID, materialID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&materialModel.MaterialCompletionModel{
		MaterialCompletionStudentID:   studentID,
		MaterialCompletionMaterialID:  materialID,
		MaterialCompletionCompletedAt: time.Now(),
	}).Error)
}

func seedQuizResult(t *testing.T, db *gorm.DB, studentID, courseID uuid.UUID, score int) {
	t.Helper()
	require.NoError(t, db.Create(&quizModel.QuizResultModel{
		QuizResultStudentID: studentID,
		QuizResultCourseID:  courseID,
		QuizResultScore:     score,
	}).Error)
}

func TestEnrollIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	first, err := svc.Enroll(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, first.EnrollmentStatus)

	second, err := svc.Enroll(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.EnrollmentID, second.EnrollmentID)

	var count int64
	require.NoError(t, db.Model(&model.EnrollmentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCompletionPercentageNotEnrolled(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, 0.0, svc.CompletionPercentage(uuid.New(), uuid.New()))
}

func TestCompletionPercentageBlend(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	_, err := svc.Enroll(studentID, courseID)
	require.NoError(t, err)

	materials := seedMaterials(t, db, courseID, 5)
	for _, m := range materials[:3] {
		completeMaterial(t, db, studentID, m.MaterialID)
	}

	// 3/5 materi = 42 poin, quiz belum lulus
	assert.InDelta(t, 42.0, svc.CompletionPercentage(studentID, courseID), 0.0001)

	// skor pas di ambang 60 tetap dihitung lulus
	seedQuizResult(t, db, studentID, courseID, 60)
	assert.InDelta(t, 72.0, svc.CompletionPercentage(studentID, courseID), 0.0001)
}

func TestCompletionPercentageStatusDominates(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	enrollment, err := svc.Enroll(studentID, courseID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollment.EnrollmentID).
		Update("enrollment_status", model.StatusCompleted).Error)

	// ada materi baru yang belum dikerjakan pun, Completed tetap 100
	seedMaterials(t, db, courseID, 4)
	assert.Equal(t, 100.0, svc.CompletionPercentage(studentID, courseID))
}

func TestMaterialGateVacuousWhenCourseEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	done, err := svc.HasCompletedAllMaterials(studentID, courseID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, svc.CanTakeQuiz(studentID, courseID))
}

func TestCanTakeQuizRequiresAllMaterials(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	materials := seedMaterials(t, db, courseID, 2)
	completeMaterial(t, db, studentID, materials[0].MaterialID)
	assert.False(t, svc.CanTakeQuiz(studentID, courseID))

	completeMaterial(t, db, studentID, materials[1].MaterialID)
	assert.True(t, svc.CanTakeQuiz(studentID, courseID))
}

func TestCheckAndCompleteFullFlow(t *testing.T) {
	svc, db := newTestService(t)
	studentID, courseID := uuid.New(), uuid.New()

	_, err := svc.Enroll(studentID, courseID)
	require.NoError(t, err)
	materials := seedMaterials(t, db, courseID, 2)

	// materi belum selesai → belum complete
	completed, err := svc.CheckAndComplete(studentID, courseID)
	require.NoError(t, err)
	assert.False(t, completed)

	for _, m := range materials {
		completeMaterial(t, db, studentID, m.MaterialID)
	}

	// materi selesai tapi quiz belum lulus → tetap belum
	completed, err = svc.CheckAndComplete(studentID, courseID)
	require.NoError(t, err)
	assert.False(t, completed)

	seedQuizResult(t, db, studentID, courseID, 80)

	completed, err = svc.CheckAndComplete(studentID, courseID)
	require.NoError(t, err)
	assert.True(t, completed)

	var enrollment model.EnrollmentModel
	require.NoError(t, db.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error)
	assert.Equal(t, model.StatusCompleted, enrollment.EnrollmentStatus)

	var certCount int64
	require.NoError(t, db.Model(&certModel.CertificateModel{}).Count(&certCount).Error)
	assert.EqualValues(t, 1, certCount)

	// panggilan ulang idempotent: status tetap, sertifikat tidak dobel
	completed, err = svc.CheckAndComplete(studentID, courseID)
	require.NoError(t, err)
	assert.True(t, completed)
	require.NoError(t, db.Model(&certModel.CertificateModel{}).Count(&certCount).Error)
	assert.EqualValues(t, 1, certCount)

	assert.Equal(t, 100.0, svc.CompletionPercentage(studentID, courseID))
}

func TestStatusTransition(t *testing.T) {
	assert.True(t, model.StatusInProgress.CanTransitionTo(model.StatusCompleted))
	assert.False(t, model.StatusCompleted.CanTransitionTo(model.StatusInProgress))
	assert.False(t, model.StatusCompleted.CanTransitionTo(model.StatusCompleted))
}
