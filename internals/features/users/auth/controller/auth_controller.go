package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elearn_backend/internals/constants"
	"elearn_backend/internals/features/users/auth/dto"
	"elearn_backend/internals/features/users/auth/model"
	"elearn_backend/internals/features/users/auth/service"
	helper "elearn_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var body dto.RegisterStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.StudentModel
	if err := ac.DB.Where("student_email = ?", body.StudentEmail).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := service.HashPassword(body.StudentPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	student := model.StudentModel{
		StudentName:     body.StudentName,
		StudentEmail:    body.StudentEmail,
		StudentPassword: hashed,
	}
	if err := ac.DB.Create(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register student")
	}

	log.Printf("[SUCCESS] Student terdaftar: %s", student.StudentEmail)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", student)
}

func (ac *AuthController) LoginStudent(c *fiber.Ctx) error {
	var body dto.LoginStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ac.DB.Where("student_email = ?", body.StudentEmail).First(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !service.CheckPasswordHash(body.StudentPassword, student.StudentPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.GenerateToken(student.StudentID, constants.RoleStudent)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"student":      student,
	})
}

// LoginGoogle: verifikasi ID token Google, find-or-create student by email.
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.LoginGoogleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := service.VerifyGoogleIDToken(body.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	var student model.StudentModel
	err = ac.DB.Where("student_email = ?", profile.Email).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		student = model.StudentModel{
			StudentName:  profile.Name,
			StudentEmail: profile.Email,
			// akun Google tidak punya password lokal
			StudentPassword: "-",
		}
		if err := ac.DB.Create(&student).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	token, err := service.GenerateToken(student.StudentID, constants.RoleStudent)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"student":      student,
	})
}

func (ac *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var body dto.LoginAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ac.DB.Where("admin_username = ?", body.AdminUsername).First(&admin).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}
	if !service.CheckPasswordHash(body.AdminPassword, admin.AdminPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := service.GenerateToken(admin.AdminID, constants.RoleAdmin)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"admin":        admin,
	})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	if helper.GetUserRole(c) == constants.RoleAdmin {
		var admin model.AdminModel
		if err := ac.DB.First(&admin, "admin_id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Admin not found")
		}
		return helper.Success(c, "OK", admin)
	}

	var student model.StudentModel
	if err := ac.DB.First(&student, "student_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "OK", student)
}
