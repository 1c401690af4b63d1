package services

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosnamedia/bosna-backend/pkg"
)

// memFile, bellekteki byte'ları multipart.File olarak sunar.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func makeUpload(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	header := &multipart.FileHeader{
		Filename: filename,
		Size:     int64(len(data)),
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
	return memFile{bytes.NewReader(data)}, header
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestUploadService_RawPassthrough(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	data := []byte("%PDF-1.4 fake pdf content")
	file, header := makeUpload(t, "Şirket Sunumu (2025).pdf", "application/pdf", data)

	asset, err := svc.Process(file, header, "documents")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", asset.MimeType)
	assert.Regexp(t, `^/uploads/documents/[a-z0-9-]+-\d+\.pdf$`, asset.URL)

	written, err := os.ReadFile(filepath.Join(dir, "documents", asset.FileName))
	require.NoError(t, err)
	assert.Equal(t, data, written, "non-media files are copied byte for byte")
}

func TestUploadService_SVGNotTranscoded(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	file, header := makeUpload(t, "logo.svg", "image/svg+xml", []byte("<svg/>"))

	asset, err := svc.Process(file, header, "logos")
	require.NoError(t, err)

	assert.Equal(t, "image/svg+xml", asset.MimeType)
	assert.Regexp(t, `\.svg$`, asset.FileName)
}

func TestUploadService_ImageBecomesWebP(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	file, header := makeUpload(t, "kapak.png", "image/png", pngBytes(t, 300, 200))

	asset, err := svc.Process(file, header, "projects")
	require.NoError(t, err)

	assert.Equal(t, "image/webp", asset.MimeType)
	assert.Regexp(t, `^kapak-\d+\.webp$`, asset.FileName)
	assert.FileExists(t, filepath.Join(dir, "projects", asset.FileName))
}

func TestUploadService_LargeImageResized(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	file, header := makeUpload(t, "buyuk.png", "image/png", pngBytes(t, 3000, 2000))

	asset, err := svc.Process(file, header, "gallery")
	require.NoError(t, err)

	img := decodeWebP(t, filepath.Join(dir, "gallery", asset.FileName))
	assert.LessOrEqual(t, img.Bounds().Dx(), 1920)
	assert.LessOrEqual(t, img.Bounds().Dy(), 1080)
}

func decodeWebP(t *testing.T, path string) image.Image {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestUploadService_SmallImageNotUpscaled(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	file, header := makeUpload(t, "kucuk.png", "image/png", pngBytes(t, 100, 80))

	asset, err := svc.Process(file, header, "gallery")
	require.NoError(t, err)

	img := decodeWebP(t, filepath.Join(dir, "gallery", asset.FileName))
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestUploadService_CorruptImageRejected(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	file, header := makeUpload(t, "bozuk.jpg", "image/jpeg", []byte("definitely not a jpeg"))

	_, err := svc.Process(file, header, "gallery")
	assert.ErrorIs(t, err, pkg.ErrUnsupportedFile)
}

func TestUploadService_FolderSanitized(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	file, header := makeUpload(t, "a.txt", "text/plain", []byte("x"))

	asset, err := svc.Process(file, header, "../../../etc")
	require.NoError(t, err)

	// Traversal karakterleri temizlenir; dosya upload kökünün altında kalır
	assert.Regexp(t, `^/uploads/etc/`, asset.URL)
	assert.FileExists(t, filepath.Join(dir, "etc", asset.FileName))
}

func TestUploadService_EmptyFolderDefaultsToGeneral(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	file, header := makeUpload(t, "a.txt", "text/plain", []byte("x"))

	asset, err := svc.Process(file, header, "")
	require.NoError(t, err)
	assert.Regexp(t, `^/uploads/general/`, asset.URL)
}

func TestUploadService_NoFile(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	_, err := svc.Process(nil, nil, "x")
	assert.ErrorIs(t, err, pkg.ErrNoFileProvided)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "proje-kapak", sanitizeName("Proje Kapak"))
	assert.Equal(t, "etc", sanitizeName("../../../etc"))
	assert.Equal(t, "", sanitizeName("???"))
}
