package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialKind string

const (
	MaterialKindFile MaterialKind = "file"
	MaterialKindText MaterialKind = "text"
)

type MaterialModel struct {
	MaterialID       uuid.UUID    `gorm:"column:material_id;type:uuid;primaryKey" json:"material_id"`
	MaterialCourseID uuid.UUID    `gorm:"column:material_course_id;type:uuid;not null;index" json:"material_course_id"`
	MaterialName     string       `gorm:"column:material_name;type:varchar(255);not null" json:"material_name"`
	MaterialKind     MaterialKind `gorm:"column:material_kind;type:varchar(10);not null;default:text" json:"material_kind"`
	MaterialFileURL  *string      `gorm:"column:material_file_url;type:text" json:"material_file_url,omitempty"`
	MaterialContent  *string      `gorm:"column:material_content;type:text" json:"material_content,omitempty"`

	MaterialCreatedAt time.Time `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}
	return nil
}
