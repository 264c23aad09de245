package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elearn_backend/internals/constants"
	certService "elearn_backend/internals/features/certificates/service"
	materialService "elearn_backend/internals/features/courses/material/service"
	enrollService "elearn_backend/internals/features/enrollments/service"
	quizService "elearn_backend/internals/features/quizzes/service"
	authMiddleware "elearn_backend/internals/middlewares/auth"
	routeDetails "elearn_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// service graph: quiz → enrollment → certificate
	certificates := certService.NewCertificateService(db, certService.NewPNGRenderer())
	enrollments := enrollService.NewEnrollmentService(db, certificates)
	materials := materialService.NewMaterialService(db)
	quizzes := quizService.NewQuizService(db, enrollments)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("❌ Hanya student yang boleh mengakses endpoint ini.", constants.RoleStudent),
	)
	routeDetails.StudentRoutes(student, db, materials, enrollments, quizzes, certificates)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengakses endpoint ini.", constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(admin, db, materials, enrollments, quizzes)
}
