package handlers

import (
	"net/http"
	"strconv"

	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/services"
)

// UploadHandler, POST /api/upload endpoint'i. Auth middleware'inin arkasındadır.
type UploadHandler struct {
	uploadService services.UploadService
	maxSize       int64
}

// NewUploadHandler, yeni bir UploadHandler oluşturur.
// maxSize, kabul edilen en büyük request body boyutudur (byte).
func NewUploadHandler(uploadService services.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, maxSize: maxSize}
}

// Upload, multipart form'dan dosyayı alıp işler.
// POST /api/upload (multipart: file, folder)
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

	// MaxBytesReader limiti aşan body'yi okuma sırasında keser —
	// 100MB'lık video sınırı aşılırsa dosya diske hiç değmez
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil { // 32MB bellekte, kalanı temp dosyada
		pkg.ErrorWithMessage(w, http.StatusRequestEntityTooLarge,
			localizer.TWithParams("upload.tooLarge", map[string]string{
				"max": strconv.FormatInt(h.maxSize>>20, 10),
			}))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("upload.noFile"))
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")

	asset, err := h.uploadService.Process(file, header, folder)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, asset)
}
