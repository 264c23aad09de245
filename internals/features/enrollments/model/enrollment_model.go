package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentStatus hanya punya satu transisi maju: InProgress → Completed.
type EnrollmentStatus string

const (
	StatusInProgress EnrollmentStatus = "InProgress"
	StatusCompleted  EnrollmentStatus = "Completed"
)

// CanTransitionTo menjaga state machine satu arah.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	return s == StatusInProgress && next == StatusCompleted
}

type EnrollmentModel struct {
	EnrollmentID        uuid.UUID        `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID        `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:idx_enrollment_student_course" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID        `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:idx_enrollment_student_course" json:"enrollment_course_id"`
	EnrollmentStatus    EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:InProgress" json:"enrollment_status"`

	EnrollmentEnrolledAt time.Time `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	if m.EnrollmentStatus == "" {
		m.EnrollmentStatus = StatusInProgress
	}
	return nil
}
