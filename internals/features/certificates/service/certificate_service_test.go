package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "elearn_backend/internals/databases"
	"elearn_backend/internals/features/certificates/model"
	courseModel "elearn_backend/internals/features/courses/course/model"
	userModel "elearn_backend/internals/features/users/auth/model"
)

// stubRenderer menggantikan render PNG di test.
type stubRenderer struct {
	path        string
	err         error
	calls       int
	studentName string
	courseTitle string
}

func (r *stubRenderer) Render(studentName, courseTitle, outputDir string) (string, error) {
	r.calls++
	r.studentName = studentName
	r.courseTitle = courseTitle
	return r.path, r.err
}

func newTestService(t *testing.T, renderer ArtifactRenderer) (*CertificateService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return NewCertificateService(db, renderer), db
}

func TestIssueIfAbsentIdempotent(t *testing.T) {
	renderer := &stubRenderer{path: "certificates/cert.png"}
	svc, db := newTestService(t, renderer)
	studentID, courseID := uuid.New(), uuid.New()

	first, err := svc.IssueIfAbsent(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusIssued, first.CertificateStatus)

	second, err := svc.IssueIfAbsent(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateID, second.CertificateID)

	var count int64
	require.NoError(t, db.Model(&model.CertificateModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	// render hanya sekali, panggilan kedua mengembalikan record existing
	assert.Equal(t, 1, renderer.calls)
}

func TestIssueIfAbsentStoresArtifactPath(t *testing.T) {
	renderer := &stubRenderer{path: "certificates/cert.png"}
	svc, db := newTestService(t, renderer)
	studentID, courseID := uuid.New(), uuid.New()

	require.NoError(t, db.Create(&userModel.StudentModel{
		StudentID:       studentID,
		StudentName:     "Budi Santoso",
		StudentEmail:    "budi@example.com",
		StudentPassword: "-",
	}).Error)
	require.NoError(t, db.Create(&courseModel.CourseModel{
		CourseID:    courseID,
		CourseTitle: "Dasar Pemrograman Go",
	}).Error)

	cert, err := svc.IssueIfAbsent(studentID, courseID)
	require.NoError(t, err)
	require.NotNil(t, cert.CertificateArtifactPath)
	assert.Equal(t, "certificates/cert.png", *cert.CertificateArtifactPath)

	// nama & judul asli dipakai di artefak
	assert.Equal(t, "Budi Santoso", renderer.studentName)
	assert.Equal(t, "Dasar Pemrograman Go", renderer.courseTitle)
}

func TestRendererFailureKeepsRecord(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("disk penuh")}
	svc, db := newTestService(t, renderer)
	studentID, courseID := uuid.New(), uuid.New()

	cert, err := svc.IssueIfAbsent(studentID, courseID)
	require.NoError(t, err)
	assert.Nil(t, cert.CertificateArtifactPath)

	// record tetap ada meski render gagal
	var stored model.CertificateModel
	require.NoError(t, db.First(&stored, "certificate_id = ?", cert.CertificateID).Error)
	assert.Equal(t, model.StatusIssued, stored.CertificateStatus)
	assert.Nil(t, stored.CertificateArtifactPath)
}

func TestRendererFallbackNames(t *testing.T) {
	renderer := &stubRenderer{path: "certificates/cert.png"}
	svc, _ := newTestService(t, renderer)
	studentID, courseID := uuid.New(), uuid.New()

	// student & course tidak ada di DB → pakai nama fallback
	_, err := svc.IssueIfAbsent(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, "Student "+studentID.String(), renderer.studentName)
	assert.Equal(t, "Course "+courseID.String(), renderer.courseTitle)
}

func TestFindByStudent(t *testing.T) {
	svc, _ := newTestService(t, nil)
	studentID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.IssueIfAbsent(studentID, uuid.New())
		require.NoError(t, err)
	}
	_, err := svc.IssueIfAbsent(uuid.New(), uuid.New())
	require.NoError(t, err)

	certs, err := svc.FindByStudent(studentID)
	require.NoError(t, err)
	assert.Len(t, certs, 3)
}
