package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbnailWidth = 800

// SaveCourseThumbnail menyimpan gambar course ke disk lokal:
// decode → resize lebar 800 → re-encode webp. Return path relatif.
func SaveCourseThumbnail(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("gagal decode gambar: %w", err)
	}

	if img.Bounds().Dx() > thumbnailWidth {
		img = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(UploadDir(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+".webp")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}
	return path, nil
}

func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
