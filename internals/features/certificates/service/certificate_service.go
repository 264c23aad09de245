package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elearn_backend/internals/configs"
	"elearn_backend/internals/features/certificates/model"
	courseModel "elearn_backend/internals/features/courses/course/model"
	userModel "elearn_backend/internals/features/users/auth/model"
)

// CertificateService satu-satunya pemilik record sertifikat.
type CertificateService struct {
	DB       *gorm.DB
	Renderer ArtifactRenderer
}

func NewCertificateService(db *gorm.DB, renderer ArtifactRenderer) *CertificateService {
	return &CertificateService{DB: db, Renderer: renderer}
}

// IssueIfAbsent menerbitkan sertifikat maksimal satu kali per (student, course).
// Record dibuat dulu; render artefak best-effort — gagal render hanya dilog,
// record tidak di-rollback.
func (s *CertificateService) IssueIfAbsent(studentID, courseID uuid.UUID) (model.CertificateModel, error) {
	var existing model.CertificateModel
	err := s.DB.
		Where("certificate_student_id = ? AND certificate_course_id = ? AND certificate_status = ?",
			studentID, courseID, model.StatusIssued).
		First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CertificateModel{}, fmt.Errorf("gagal cek sertifikat existing: %w", err)
	}

	cert := model.CertificateModel{
		CertificateStudentID: studentID,
		CertificateCourseID:  courseID,
		CertificateStatus:    model.StatusIssued,
	}
	if err := s.DB.Create(&cert).Error; err != nil {
		return model.CertificateModel{}, fmt.Errorf("gagal membuat sertifikat: %w", err)
	}

	s.renderArtifact(&cert)
	return cert, nil
}

func (s *CertificateService) renderArtifact(cert *model.CertificateModel) {
	if s.Renderer == nil {
		return
	}

	studentName := "Student " + cert.CertificateStudentID.String()
	var student userModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", cert.CertificateStudentID).Error; err == nil {
		studentName = student.StudentName
	}

	courseTitle := "Course " + cert.CertificateCourseID.String()
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "course_id = ?", cert.CertificateCourseID).Error; err == nil {
		courseTitle = course.CourseTitle
	}

	outputDir := configs.GetEnv("CERTIFICATE_DIR", "certificates")
	path, err := s.Renderer.Render(studentName, courseTitle, outputDir)
	if err != nil {
		log.Printf("[WARN] Gagal render artefak sertifikat %s: %v", cert.CertificateID, err)
		return
	}

	if err := s.DB.Model(cert).Update("certificate_artifact_path", path).Error; err != nil {
		log.Printf("[WARN] Gagal simpan path artefak sertifikat %s: %v", cert.CertificateID, err)
		return
	}
	cert.CertificateArtifactPath = &path
	log.Printf("[SUCCESS] Sertifikat dirender: %s", path)
}

// FindByStudent untuk halaman achievements.
func (s *CertificateService) FindByStudent(studentID uuid.UUID) ([]model.CertificateModel, error) {
	var certs []model.CertificateModel
	err := s.DB.
		Where("certificate_student_id = ?", studentID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error
	return certs, err
}
