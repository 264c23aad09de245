package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "elearn_backend/internals/features/courses/course/controller"
)

// Katalog course bisa diakses tanpa login.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.GetAllCourses)
	courses.Get("/:id", courseCtrl.GetCourseByID)
}
