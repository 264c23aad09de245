package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusIssued = "Issued"

// CertificateModel: maksimal satu sertifikat Issued per (student, course),
// dijaga unique index + lookup keyed di service.
type CertificateModel struct {
	CertificateID        uuid.UUID `gorm:"column:certificate_id;type:uuid;primaryKey" json:"certificate_id"`
	CertificateStudentID uuid.UUID `gorm:"column:certificate_student_id;type:uuid;not null;uniqueIndex:idx_certificate_student_course" json:"certificate_student_id"`
	CertificateCourseID  uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null;uniqueIndex:idx_certificate_student_course" json:"certificate_course_id"`
	CertificateStatus    string    `gorm:"column:certificate_status;type:varchar(20);not null;default:Issued" json:"certificate_status"`
	// path artefak PNG hasil render; nil kalau render gagal
	CertificateArtifactPath *string `gorm:"column:certificate_artifact_path;type:text" json:"certificate_artifact_path,omitempty"`

	CertificateIssuedAt time.Time `gorm:"column:certificate_issued_at;autoCreateTime" json:"certificate_issued_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	if m.CertificateStatus == "" {
		m.CertificateStatus = StatusIssued
	}
	return nil
}
