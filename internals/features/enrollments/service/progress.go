package service

import (
	"fmt"

	"github.com/google/uuid"

	"elearn_backend/internals/features/enrollments/model"
)

// ProgressDetail untuk layar progress/report: angka mentah + persentase blend.
type ProgressDetail struct {
	StudentID          uuid.UUID              `json:"student_id"`
	CourseID           uuid.UUID              `json:"course_id"`
	Status             model.EnrollmentStatus `json:"status"`
	TotalMaterials     int64                  `json:"total_materials"`
	CompletedMaterials int64                  `json:"completed_materials"`
	QuizPassed         bool                   `json:"quiz_passed"`
	Percentage         float64                `json:"percentage"`
}

// Progress mengembalikan detail progress; beda dengan CompletionPercentage,
// method ini propagasi error ke caller (dipakai endpoint report, bukan badge UI).
func (s *EnrollmentService) Progress(studentID, courseID uuid.UUID) (ProgressDetail, error) {
	detail := ProgressDetail{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    model.StatusInProgress,
	}

	var enrollment model.EnrollmentModel
	if err := s.DB.
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		First(&enrollment).Error; err == nil {
		detail.Status = enrollment.EnrollmentStatus
	}

	total, completed, err := s.materialCounts(studentID, courseID)
	if err != nil {
		return detail, fmt.Errorf("gagal hitung progress materi: %w", err)
	}
	detail.TotalMaterials = total
	detail.CompletedMaterials = completed

	passed, err := s.HasPassedQuiz(studentID, courseID)
	if err != nil {
		return detail, err
	}
	detail.QuizPassed = passed

	detail.Percentage = s.CompletionPercentage(studentID, courseID)
	return detail, nil
}
