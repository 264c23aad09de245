package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"elearn_backend/internals/features/certificates/model"
	certService "elearn_backend/internals/features/certificates/service"
	helper "elearn_backend/internals/helpers"
)

type CertificateController struct {
	DB           *gorm.DB
	Certificates *certService.CertificateService
}

func NewCertificateController(db *gorm.DB, certificates *certService.CertificateService) *CertificateController {
	return &CertificateController{DB: db, Certificates: certificates}
}

// GetMyCertificates: halaman achievements student.
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	certs, err := ctrl.Certificates.FindByStudent(studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch certificates")
	}
	return helper.Success(c, "OK", certs)
}

func (ctrl *CertificateController) GetCertificateByID(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid certificate ID")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_id = ? AND certificate_student_id = ?", id, studentID).
		First(&cert).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Certificate not found")
	}
	return helper.Success(c, "OK", cert)
}
