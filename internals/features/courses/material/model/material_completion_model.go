package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialCompletionModel mencatat materi yang sudah diselesaikan student.
// Satu baris per (student, material); re-mark hanya update timestamp.
type MaterialCompletionModel struct {
	MaterialCompletionID         uuid.UUID `gorm:"column:material_completion_id;type:uuid;primaryKey" json:"material_completion_id"`
	MaterialCompletionStudentID  uuid.UUID `gorm:"column:material_completion_student_id;type:uuid;not null;uniqueIndex:idx_completion_student_material" json:"material_completion_student_id"`
	MaterialCompletionMaterialID uuid.UUID `gorm:"column:material_completion_material_id;type:uuid;not null;uniqueIndex:idx_completion_student_material" json:"material_completion_material_id"`

	MaterialCompletionCompletedAt time.Time `gorm:"column:material_completion_completed_at;not null" json:"material_completion_completed_at"`
}

func (MaterialCompletionModel) TableName() string {
	return "material_completions"
}

func (m *MaterialCompletionModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialCompletionID == uuid.Nil {
		m.MaterialCompletionID = uuid.New()
	}
	return nil
}
