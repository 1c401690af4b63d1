package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
)

// Görsel işleme sabitleri: uzun kenar 1920px'i aşan görseller küçültülür,
// hiçbir görsel büyütülmez. WebP kalitesi web için yeterli, dosya boyutu küçük.
const (
	imageMaxWidth  = 1920
	imageMaxHeight = 1080
	webpQuality    = 80
)

// safeNameRegex, dosya ve klasör adlarında izin verilen karakterlerin tersi.
var safeNameRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// UploadService, yüklenen dosyaları işleyip diske yazar.
//
// MIME tipine göre üç yol vardır:
//   - image/* (SVG hariç): boyutlandır + WebP'e çevir
//   - video/*: ffmpeg ile sıkıştırılmış, stream dostu MP4'e çevir
//   - diğer her şey: olduğu gibi kopyala
type UploadService interface {
	// Process, multipart dosyayı işler ve public URL'li sonucu döner.
	// folder, uploads altındaki hedef alt dizindir; boş/geçersizse "general".
	Process(file multipart.File, header *multipart.FileHeader, folder string) (*models.UploadedAsset, error)
}

type uploadService struct {
	uploadDir string
}

// NewUploadService, yeni bir UploadService oluşturur.
func NewUploadService(uploadDir string) UploadService {
	return &uploadService{uploadDir: uploadDir}
}

func (s *uploadService) Process(file multipart.File, header *multipart.FileHeader, folder string) (*models.UploadedAsset, error) {
	if header == nil || header.Filename == "" {
		return nil, pkg.ErrNoFileProvided
	}

	folder = sanitizeName(folder)
	if folder == "" {
		folder = "general"
	}

	destDir := filepath.Join(s.uploadDir, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrReadFailure, err)
	}

	mimeType := header.Header.Get("Content-Type")
	base := baseNameOf(header.Filename)

	var fileName string
	switch {
	case strings.HasPrefix(mimeType, "image/") && mimeType != "image/svg+xml":
		fileName, err = s.processImage(data, base, destDir)
		mimeType = "image/webp"
	case strings.HasPrefix(mimeType, "video/"):
		fileName, err = s.processVideo(data, base, destDir)
		mimeType = "video/mp4"
	default:
		// SVG, PDF, font vb. — dönüşüm yok, byte kopyası
		fileName = timestampedName(base, filepath.Ext(header.Filename))
		err = os.WriteFile(filepath.Join(destDir, fileName), data, 0644)
		if err != nil {
			err = fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
		}
	}
	if err != nil {
		return nil, err
	}

	return &models.UploadedAsset{
		URL:      "/uploads/" + folder + "/" + fileName,
		FileName: fileName,
		MimeType: mimeType,
	}, nil
}

// processImage, görseli gerekirse küçültür ve WebP olarak yazar.
func (s *uploadService) processImage(data []byte, base, destDir string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkg.ErrUnsupportedFile, err)
	}

	// Fit: en-boy oranını koruyarak sınırların içine sığdırır.
	// Görsel zaten küçükse dokunmaz — upscale yapılmaz.
	bounds := img.Bounds()
	if bounds.Dx() > imageMaxWidth || bounds.Dy() > imageMaxHeight {
		img = imaging.Fit(img, imageMaxWidth, imageMaxHeight, imaging.Lanczos)
	}

	fileName := timestampedName(base, ".webp")

	out, err := os.Create(filepath.Join(destDir, fileName))
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("%w: %v", pkg.ErrTranscodeFailed, err)
	}

	return fileName, nil
}

// processVideo, videoyu ffmpeg ile sıkıştırılmış MP4'e çevirir.
// ffmpeg dosya yollarıyla çalıştığı için input önce temp dosyaya yazılır;
// temp dosya her durumda silinir.
func (s *uploadService) processVideo(data []byte, base, destDir string) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.video")
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}

	fileName := timestampedName(base, ".mp4")
	outPath := filepath.Join(destDir, fileName)

	// libx264 + crf 28: görünür kalite kaybı olmadan ciddi küçülme.
	// scale=-2:720 yüksekliği 720p'ye indirir, genişliği çift sayıya yuvarlar
	// (x264 tek sayı boyut kabul etmez). faststart moov atom'unu dosya başına
	// taşır — tarayıcı videoyu indirme bitmeden oynatmaya başlayabilir.
	err = ffmpeg.Input(tmpPath).
		Output(outPath, ffmpeg.KwArgs{
			"c:v":      "libx264",
			"crf":      "28",
			"preset":   "fast",
			"vf":       "scale=-2:720",
			"c:a":      "aac",
			"b:a":      "128k",
			"movflags": "+faststart",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("%w: %v", pkg.ErrTranscodeFailed, err)
	}

	return fileName, nil
}

// timestampedName, "{base}-{unixMilli}{ext}" formatında dosya adı üretir.
// Timestamp aynı isimli dosyaların birbirini ezmesini engeller.
func timestampedName(base, ext string) string {
	return fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), strings.ToLower(ext))
}

// baseNameOf, orijinal dosya adından güvenli bir taban isim çıkarır.
// Uzantı atılır, Türkçe karakterler ve boşluklar tireye çevrilir.
func baseNameOf(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = sanitizeName(base)
	if base == "" {
		base = "file"
	}
	return base
}

// sanitizeName, isimden path traversal ve URL'de sorun çıkaracak
// karakterleri temizler.
func sanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = safeNameRegex.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
