package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "elearn_backend/internals/features/courses/course/model"
	"elearn_backend/internals/features/enrollments/service"
	helper "elearn_backend/internals/helpers"
)

type EnrollmentController struct {
	DB          *gorm.DB
	Enrollments *service.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB, enrollments *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{DB: db, Enrollments: enrollments}
}

// Enroll: idempotent — enroll ulang mengembalikan enrollment yang sudah ada.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	enrollment, err := ctrl.Enrollments.Enroll(studentID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berhasil enroll", enrollment)
}

// MyCourses: daftar enrollment student + persentase progress tiap course.
func (ctrl *EnrollmentController) MyCourses(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	enrollments, err := ctrl.Enrollments.FindByStudent(studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	type enrolledCourse struct {
		Enrollment interface{} `json:"enrollment"`
		Course     interface{} `json:"course"`
		Percentage float64     `json:"percentage"`
	}

	items := make([]enrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModel.CourseModel
		_ = ctrl.DB.First(&course, "course_id = ?", e.EnrollmentCourseID).Error

		items = append(items, enrolledCourse{
			Enrollment: e,
			Course:     course,
			Percentage: ctrl.Enrollments.CompletionPercentage(studentID, e.EnrollmentCourseID),
		})
	}
	return helper.Success(c, "OK", items)
}

// GetProgress: detail progress satu course (layar report/progress).
func (ctrl *EnrollmentController) GetProgress(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	detail, err := ctrl.Enrollments.Progress(studentID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute progress")
	}
	return helper.Success(c, "OK", detail)
}

// CanTakeQuiz: status gate quiz untuk UI.
func (ctrl *EnrollmentController) CanTakeQuiz(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	return helper.Success(c, "OK", fiber.Map{
		"can_take_quiz": ctrl.Enrollments.CanTakeQuiz(studentID, courseID),
	})
}

// Recheck: trigger manual CheckAndComplete (refresh report) — aman dipanggil
// berulang kali.
func (ctrl *EnrollmentController) Recheck(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	completed, err := ctrl.Enrollments.CheckAndComplete(studentID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check completion")
	}
	return helper.Success(c, "OK", fiber.Map{
		"completed": completed,
	})
}
