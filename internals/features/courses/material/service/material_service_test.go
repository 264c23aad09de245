package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "elearn_backend/internals/databases"
	"elearn_backend/internals/features/courses/material/model"
)

func newTestService(t *testing.T) (*MaterialService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return NewMaterialService(db), db
}

func TestMarkCompletedIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	studentID, materialID := uuid.New(), uuid.New()

	require.NoError(t, svc.MarkCompleted(studentID, materialID))

	var first model.MaterialCompletionModel
	require.NoError(t, db.First(&first, "material_completion_student_id = ?", studentID).Error)

	// re-mark: tidak error, tidak duplikat, timestamp diperbarui
	require.NoError(t, svc.MarkCompleted(studentID, materialID))

	var count int64
	require.NoError(t, db.Model(&model.MaterialCompletionModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var second model.MaterialCompletionModel
	require.NoError(t, db.First(&second, "material_completion_student_id = ?", studentID).Error)
	assert.Equal(t, first.MaterialCompletionID, second.MaterialCompletionID)
	assert.False(t, second.MaterialCompletionCompletedAt.Before(first.MaterialCompletionCompletedAt))

	done, err := svc.IsCompleted(studentID, materialID)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestIsCompletedFalseByDefault(t *testing.T) {
	svc, _ := newTestService(t)

	done, err := svc.IsCompleted(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, done)
}

func TestFindByCourseScoped(t *testing.T) {
	svc, db := newTestService(t)
	courseID := uuid.New()

	for i := 0; i < 3; i++ {
		content := fmt.Sprintf("isi materi %d", i+1)
		require.NoError(t, db.Create(&model.MaterialModel{
			MaterialCourseID: courseID,
			MaterialName:     fmt.Sprintf("Materi %d", i+1),
			MaterialKind:     model.MaterialKindText,
			MaterialContent:  &content,
		}).Error)
	}
	require.NoError(t, db.Create(&model.MaterialModel{
		MaterialCourseID: uuid.New(),
		MaterialName:     "Materi course lain",
		MaterialKind:     model.MaterialKindText,
	}).Error)

	materials, err := svc.FindByCourse(courseID)
	require.NoError(t, err)
	assert.Len(t, materials, 3)
}
