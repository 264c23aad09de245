package dto

import (
	"time"

	"github.com/google/uuid"

	"elearn_backend/internals/features/courses/material/model"
)

type CreateMaterialRequest struct {
	MaterialName    string  `json:"material_name" validate:"required,min=3,max=255"`
	MaterialKind    string  `json:"material_kind" validate:"required,oneof=file text"`
	MaterialFileURL *string `json:"material_file_url"`
	MaterialContent *string `json:"material_content"`
}

type UpdateMaterialRequest struct {
	MaterialName    *string `json:"material_name" validate:"omitempty,min=3,max=255"`
	MaterialFileURL *string `json:"material_file_url"`
	MaterialContent *string `json:"material_content"`
}

// MaterialWithCompletionDTO: materi + flag selesai per student.
type MaterialWithCompletionDTO struct {
	MaterialID      uuid.UUID          `json:"material_id"`
	MaterialName    string             `json:"material_name"`
	MaterialKind    model.MaterialKind `json:"material_kind"`
	MaterialFileURL *string            `json:"material_file_url,omitempty"`
	MaterialContent *string            `json:"material_content,omitempty"`
	Completed       bool               `json:"completed"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
}

func ToMaterialWithCompletionDTO(m model.MaterialModel, completedAt *time.Time) MaterialWithCompletionDTO {
	return MaterialWithCompletionDTO{
		MaterialID:      m.MaterialID,
		MaterialName:    m.MaterialName,
		MaterialKind:    m.MaterialKind,
		MaterialFileURL: m.MaterialFileURL,
		MaterialContent: m.MaterialContent,
		Completed:       completedAt != nil,
		CompletedAt:     completedAt,
	}
}
