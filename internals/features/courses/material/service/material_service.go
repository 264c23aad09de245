package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elearn_backend/internals/features/courses/material/model"
)

type MaterialService struct {
	DB *gorm.DB
}

func NewMaterialService(db *gorm.DB) *MaterialService {
	return &MaterialService{DB: db}
}

func (s *MaterialService) FindByCourse(courseID uuid.UUID) ([]model.MaterialModel, error) {
	var materials []model.MaterialModel
	err := s.DB.
		Where("material_course_id = ?", courseID).
		Order("material_created_at ASC").
		Find(&materials).Error
	return materials, err
}

// MarkCompleted upsert: re-mark hanya memperbarui timestamp, tidak pernah
// error ataupun duplikat.
func (s *MaterialService) MarkCompleted(studentID, materialID uuid.UUID) error {
	completion := model.MaterialCompletionModel{
		MaterialCompletionStudentID:   studentID,
		MaterialCompletionMaterialID:  materialID,
		MaterialCompletionCompletedAt: time.Now(),
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "material_completion_student_id"},
			{Name: "material_completion_material_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"material_completion_completed_at": time.Now(),
		}),
	}).Create(&completion).Error
	if err != nil {
		return fmt.Errorf("gagal tandai materi selesai: %w", err)
	}
	return nil
}

func (s *MaterialService) IsCompleted(studentID, materialID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&model.MaterialCompletionModel{}).
		Where("material_completion_student_id = ? AND material_completion_material_id = ?", studentID, materialID).
		Count(&count).Error
	return count > 0, err
}
