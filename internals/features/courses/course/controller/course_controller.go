package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"elearn_backend/internals/features/courses/course/dto"
	"elearn_backend/internals/features/courses/course/model"
	helper "elearn_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// 📚 Katalog (public)
// =============================
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CourseModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	var courses []model.CourseModel
	if err := ctrl.DB.
		Order("course_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.Success(c, "OK", fiber.Map{
		"courses":    courses,
		"pagination": helper.BuildPagination(total, paging, len(courses)),
	})
}

func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "OK", course)
}

// =============================
// 🛠️ Admin CRUD
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		CourseTitle:       body.CourseTitle,
		CourseDescription: body.CourseDescription,
		CourseInstructor:  body.CourseInstructor,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course dibuat", course)
}

func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	updates := map[string]interface{}{}
	if body.CourseTitle != nil {
		updates["course_title"] = *body.CourseTitle
	}
	if body.CourseDescription != nil {
		updates["course_description"] = *body.CourseDescription
	}
	if body.CourseInstructor != nil {
		updates["course_instructor"] = *body.CourseInstructor
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
		}
	}
	return helper.Success(c, "Course diperbarui", course)
}

func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	if err := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.Success(c, "Course dihapus", nil)
}

// UploadCourseImage: thumbnail di-resize lalu disimpan sebagai webp.
func (ctrl *CourseController) UploadCourseImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File gambar wajib diisi")
	}

	path, err := helper.SaveCourseThumbnail("courses", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Model(&course).Update("course_image_url", path).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image path")
	}
	course.CourseImageURL = &path
	return helper.Success(c, "Gambar course tersimpan", course)
}
