package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certService "elearn_backend/internals/features/certificates/service"
	materialModel "elearn_backend/internals/features/courses/material/model"
	"elearn_backend/internals/features/enrollments/model"
	quizModel "elearn_backend/internals/features/quizzes/model"
)

const passingScore = 60

// EnrollmentService memegang state machine enrollment: hanya service ini yang
// boleh menulis enrollment_status.
type EnrollmentService struct {
	DB           *gorm.DB
	Certificates *certService.CertificateService
}

func NewEnrollmentService(db *gorm.DB, certificates *certService.CertificateService) *EnrollmentService {
	return &EnrollmentService{DB: db, Certificates: certificates}
}

// Enroll idempotent: enroll ulang mengembalikan enrollment yang sudah ada.
func (s *EnrollmentService) Enroll(studentID, courseID uuid.UUID) (model.EnrollmentModel, error) {
	var existing model.EnrollmentModel
	err := s.DB.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.EnrollmentModel{}, fmt.Errorf("gagal cek enrollment: %w", err)
	}

	enrollment := model.EnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentCourseID:  courseID,
		EnrollmentStatus:    model.StatusInProgress,
	}
	if err := s.DB.Create(&enrollment).Error; err != nil {
		return model.EnrollmentModel{}, fmt.Errorf("gagal membuat enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *EnrollmentService) IsEnrolled(studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (s *EnrollmentService) FindByStudent(studentID uuid.UUID) ([]model.EnrollmentModel, error) {
	var enrollments []model.EnrollmentModel
	err := s.DB.
		Where("enrollment_student_id = ?", studentID).
		Order("enrollment_enrolled_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

// materialCounts menghitung total materi course dan berapa yang sudah selesai.
func (s *EnrollmentService) materialCounts(studentID, courseID uuid.UUID) (total, completed int64, err error) {
	if err = s.DB.Model(&materialModel.MaterialModel{}).
		Where("material_course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("gagal hitung materi: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	if err = s.DB.Model(&materialModel.MaterialCompletionModel{}).
		Joins("JOIN materials ON materials.material_id = material_completions.material_completion_material_id").
		Where("materials.material_course_id = ? AND material_completions.material_completion_student_id = ?", courseID, studentID).
		Count(&completed).Error; err != nil {
		return 0, 0, fmt.Errorf("gagal hitung materi selesai: %w", err)
	}
	return total, completed, nil
}

// HasCompletedAllMaterials adalah satu-satunya predikat "semua materi selesai";
// CanTakeQuiz, CheckAndComplete, dan Progress semua memakai ini.
// Course tanpa materi dianggap selesai (tidak ada yang harus diselesaikan).
func (s *EnrollmentService) HasCompletedAllMaterials(studentID, courseID uuid.UUID) (bool, error) {
	total, completed, err := s.materialCounts(studentID, courseID)
	if err != nil {
		return false, err
	}
	return completed == total, nil
}

// HasPassedQuiz: ada attempt dengan skor >= 60 (best score, bukan yang terakhir).
func (s *EnrollmentService) HasPassedQuiz(studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&quizModel.QuizResultModel{}).
		Where("quiz_result_student_id = ? AND quiz_result_course_id = ? AND quiz_result_score >= ?",
			studentID, courseID, passingScore).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gagal cek hasil quiz: %w", err)
	}
	return count > 0, nil
}

// CanTakeQuiz: gate quiz — semua materi harus selesai dulu. Enrollment tidak
// dicek di sini (urusan caller). Kalau baca data gagal, gate tertutup.
func (s *EnrollmentService) CanTakeQuiz(studentID, courseID uuid.UUID) bool {
	ok, err := s.HasCompletedAllMaterials(studentID, courseID)
	if err != nil {
		log.Printf("[WARN] CanTakeQuiz degradasi ke false: %v", err)
		return false
	}
	return ok
}

// CheckAndComplete idempotent dan aman dipanggil berulang dari trigger mana pun
// (submit quiz, selesai materi, refresh report). Status Completed tidak pernah
// diverifikasi ulang ataupun diturunkan.
func (s *EnrollmentService) CheckAndComplete(studentID, courseID uuid.UUID) (bool, error) {
	var enrollment model.EnrollmentModel
	err := s.DB.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err == nil && enrollment.EnrollmentStatus == model.StatusCompleted {
		return true, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("gagal baca enrollment: %w", err)
	}

	materialsDone, err := s.HasCompletedAllMaterials(studentID, courseID)
	if err != nil {
		return false, err
	}
	quizPassed, err := s.HasPassedQuiz(studentID, courseID)
	if err != nil {
		return false, err
	}
	if !materialsDone || !quizPassed {
		return false, nil
	}

	if enrollment.EnrollmentID != uuid.Nil &&
		enrollment.EnrollmentStatus.CanTransitionTo(model.StatusCompleted) {
		if err := s.DB.Model(&model.EnrollmentModel{}).
			Where("enrollment_id = ?", enrollment.EnrollmentID).
			Update("enrollment_status", model.StatusCompleted).Error; err != nil {
			return false, fmt.Errorf("gagal update status enrollment: %w", err)
		}
	}

	if _, err := s.Certificates.IssueIfAbsent(studentID, courseID); err != nil {
		// record completion sudah jadi; sertifikat bisa diterbitkan ulang
		// lewat pemanggilan berikutnya
		log.Printf("[WARN] Gagal terbitkan sertifikat %s/%s: %v", studentID, courseID, err)
	}
	return true, nil
}

// CompletionPercentage: materi maksimal 70 poin, quiz lulus 30 poin flat.
// Status Completed selalu 100 (status menang atas hitungan ulang). Gagal baca
// data didegradasi ke 0 + warn, tidak pernah dipropagasi ke UI.
func (s *EnrollmentService) CompletionPercentage(studentID, courseID uuid.UUID) float64 {
	var enrollment model.EnrollmentModel
	err := s.DB.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0.0
	}
	if err != nil {
		log.Printf("[WARN] CompletionPercentage degradasi ke 0: %v", err)
		return 0.0
	}
	if enrollment.EnrollmentStatus == model.StatusCompleted {
		return 100.0
	}

	total, completed, err := s.materialCounts(studentID, courseID)
	if err != nil {
		log.Printf("[WARN] CompletionPercentage degradasi ke 0: %v", err)
		return 0.0
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(completed) / float64(total) * 70.0
	}

	passed, err := s.HasPassedQuiz(studentID, courseID)
	if err != nil {
		log.Printf("[WARN] CompletionPercentage abaikan sinyal quiz: %v", err)
		passed = false
	}
	if passed {
		percentage += 30.0
	}
	return percentage
}
