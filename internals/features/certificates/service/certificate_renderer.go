package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
)

// ArtifactRenderer menggambar artefak sertifikat; gagal render tidak boleh
// membatalkan record sertifikat.
type ArtifactRenderer interface {
	Render(studentName, courseTitle, outputDir string) (string, error)
}

const (
	certWidth  = 1000
	certHeight = 700
)

// PNGRenderer menggambar sertifikat 1000x700 ke PNG di disk lokal.
type PNGRenderer struct {
	titleFace font.Face
	bodyFace  font.Face
	nameFace  font.Face
}

// NewPNGRenderer memuat font dari CERTIFICATE_FONT (opsional). Tanpa font,
// gg memakai basicfont bawaan.
func NewPNGRenderer() *PNGRenderer {
	r := &PNGRenderer{}
	fontPath := os.Getenv("CERTIFICATE_FONT")
	if fontPath == "" {
		return r
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return r
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return r
	}
	r.titleFace = truetype.NewFace(f, &truetype.Options{Size: 52})
	r.nameFace = truetype.NewFace(f, &truetype.Options{Size: 44})
	r.bodyFace = truetype.NewFace(f, &truetype.Options{Size: 24})
	return r
}

func (r *PNGRenderer) Render(studentName, courseTitle, outputDir string) (string, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// background
	dc.SetRGB255(240, 248, 255)
	dc.Clear()

	// border luar
	dc.SetRGB255(25, 118, 210)
	dc.SetLineWidth(8)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()

	// border dalam
	dc.SetRGB255(100, 181, 246)
	dc.SetLineWidth(3)
	dc.DrawRectangle(50, 50, certWidth-100, certHeight-100)
	dc.Stroke()

	dc.SetRGB255(25, 118, 210)
	if r.titleFace != nil {
		dc.SetFontFace(r.titleFace)
	}
	dc.DrawStringAnchored("CERTIFICATE OF COMPLETION", certWidth/2, 150, 0.5, 0.5)

	dc.SetRGB255(66, 66, 66)
	if r.bodyFace != nil {
		dc.SetFontFace(r.bodyFace)
	}
	dc.DrawStringAnchored("This is to certify that", certWidth/2, 220, 0.5, 0.5)

	dc.SetRGB255(21, 101, 192)
	if r.nameFace != nil {
		dc.SetFontFace(r.nameFace)
	}
	dc.DrawStringAnchored(studentName, certWidth/2, 300, 0.5, 0.5)

	// garis bawah nama
	nameWidth, _ := dc.MeasureString(studentName)
	dc.SetLineWidth(2)
	dc.DrawLine(certWidth/2-nameWidth/2, 325, certWidth/2+nameWidth/2, 325)
	dc.Stroke()

	dc.SetRGB255(66, 66, 66)
	if r.bodyFace != nil {
		dc.SetFontFace(r.bodyFace)
	}
	dc.DrawStringAnchored("has successfully completed the course", certWidth/2, 390, 0.5, 0.5)

	dc.SetRGB255(25, 118, 210)
	if r.nameFace != nil {
		dc.SetFontFace(r.nameFace)
	}
	dc.DrawStringAnchored(courseTitle, certWidth/2, 460, 0.5, 0.5)

	dc.SetRGB255(117, 117, 117)
	if r.bodyFace != nil {
		dc.SetFontFace(r.bodyFace)
	}
	dc.DrawStringAnchored("Issued on "+time.Now().Format("2 January 2006"), certWidth/2, 560, 0.5, 0.5)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder sertifikat: %w", err)
	}
	path := filepath.Join(outputDir, "certificate_"+uuid.NewString()+".png")
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("gagal simpan PNG sertifikat: %w", err)
	}
	return path, nil
}
