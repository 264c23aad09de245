package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "elearn_backend/internals/features/users/auth/controller"
	authMiddleware "elearn_backend/internals/middlewares/auth"
	middlewares "elearn_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.RegisterStudent)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.LoginStudent)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/login-admin", middlewares.LoginRateLimiter(), ctrl.LoginAdmin)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
