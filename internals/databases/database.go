package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"elearn_backend/internals/configs"
	certificateModel "elearn_backend/internals/features/certificates/model"
	courseModel "elearn_backend/internals/features/courses/course/model"
	materialModel "elearn_backend/internals/features/courses/material/model"
	enrollmentModel "elearn_backend/internals/features/enrollments/model"
	quizModel "elearn_backend/internals/features/quizzes/model"
	userModel "elearn_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=elearn&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjaga schema tetap sinkron untuk semua model.
// Dipakai juga oleh test (sqlite in-memory) supaya satu sumber schema.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.StudentModel{},
		&userModel.AdminModel{},
		&courseModel.CourseModel{},
		&materialModel.MaterialModel{},
		&materialModel.MaterialCompletionModel{},
		&enrollmentModel.EnrollmentModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizResultModel{},
		&certificateModel.CertificateModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate schema: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
