package database

import (
	"log"

	"gorm.io/gorm"

	"elearn_backend/internals/configs"
	userModel "elearn_backend/internals/features/users/auth/model"
	"elearn_backend/internals/features/users/auth/service"
)

// SeedDefaultAdmin membuat akun admin pertama kalau tabel masih kosong.
func SeedDefaultAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&userModel.AdminModel{}).Count(&count).Error; err != nil {
		log.Printf("[WARN] Gagal cek tabel admins: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")

	hashed, err := service.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password admin: %v", err)
		return
	}

	admin := userModel.AdminModel{
		AdminUsername: username,
		AdminPassword: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Gagal seed admin: %v", err)
		return
	}
	log.Printf("[SUCCESS] Admin default dibuat: %s", username)
}
