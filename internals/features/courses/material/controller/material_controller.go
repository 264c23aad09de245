package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"elearn_backend/internals/features/courses/material/dto"
	"elearn_backend/internals/features/courses/material/model"
	materialService "elearn_backend/internals/features/courses/material/service"
	enrollService "elearn_backend/internals/features/enrollments/service"
	helper "elearn_backend/internals/helpers"
)

var validate = validator.New()

type MaterialController struct {
	DB          *gorm.DB
	Materials   *materialService.MaterialService
	Enrollments *enrollService.EnrollmentService
}

func NewMaterialController(db *gorm.DB, materials *materialService.MaterialService, enrollments *enrollService.EnrollmentService) *MaterialController {
	return &MaterialController{DB: db, Materials: materials, Enrollments: enrollments}
}

// =============================
// 🛠️ Admin CRUD
// =============================
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	material := model.MaterialModel{
		MaterialCourseID: courseID,
		MaterialName:     body.MaterialName,
		MaterialKind:     model.MaterialKind(body.MaterialKind),
		MaterialFileURL:  body.MaterialFileURL,
		MaterialContent:  body.MaterialContent,
	}
	if err := ctrl.DB.Create(&material).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create material")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materi dibuat", material)
}

func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid material ID")
	}

	var body dto.UpdateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Material not found")
	}

	updates := map[string]interface{}{}
	if body.MaterialName != nil {
		updates["material_name"] = *body.MaterialName
	}
	if body.MaterialFileURL != nil {
		updates["material_file_url"] = *body.MaterialFileURL
	}
	if body.MaterialContent != nil {
		updates["material_content"] = *body.MaterialContent
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&material).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update material")
		}
	}
	return helper.Success(c, "Materi diperbarui", material)
}

func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid material ID")
	}

	if err := ctrl.DB.Delete(&model.MaterialModel{}, "material_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete material")
	}
	return helper.Success(c, "Materi dihapus", nil)
}

// =============================
// 📖 Student
// =============================

// GetCourseMaterials: daftar materi satu course + flag selesai per student.
func (ctrl *MaterialController) GetCourseMaterials(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	materials, err := ctrl.Materials.FindByCourse(courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch materials")
	}

	var completions []model.MaterialCompletionModel
	if err := ctrl.DB.
		Joins("JOIN materials ON materials.material_id = material_completions.material_completion_material_id").
		Where("materials.material_course_id = ? AND material_completions.material_completion_student_id = ?", courseID, studentID).
		Find(&completions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch completions")
	}

	completedAt := make(map[uuid.UUID]model.MaterialCompletionModel, len(completions))
	for _, comp := range completions {
		completedAt[comp.MaterialCompletionMaterialID] = comp
	}

	dtos := make([]dto.MaterialWithCompletionDTO, 0, len(materials))
	for _, m := range materials {
		if comp, ok := completedAt[m.MaterialID]; ok {
			at := comp.MaterialCompletionCompletedAt
			dtos = append(dtos, dto.ToMaterialWithCompletionDTO(m, &at))
		} else {
			dtos = append(dtos, dto.ToMaterialWithCompletionDTO(m, nil))
		}
	}
	return helper.Success(c, "OK", dtos)
}

// MarkCompleted: tandai materi selesai (upsert), lalu cek completion course —
// event selesai-materi adalah salah satu trigger CheckAndComplete.
func (ctrl *MaterialController) MarkCompleted(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid material ID")
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Material not found")
	}

	if err := ctrl.Materials.MarkCompleted(studentID, materialID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	completed, err := ctrl.Enrollments.CheckAndComplete(studentID, material.MaterialCourseID)
	if err != nil {
		log.Printf("[WARN] CheckAndComplete setelah materi selesai gagal: %v", err)
	}

	return helper.Success(c, "Materi ditandai selesai", fiber.Map{
		"course_completed": completed,
		"percentage":       ctrl.Enrollments.CompletionPercentage(studentID, material.MaterialCourseID),
	})
}
