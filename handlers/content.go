package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/services"
)

// ContentHandler, /api/content/{type} CRUD endpoint'leri.
// Tüm endpoint'ler auth middleware'inin arkasındadır.
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler, yeni bir ContentHandler oluşturur.
func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Get, tipin tüm dokümanını döner.
// GET /api/content/{type}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(r.PathValue("type"))

	doc, err := h.contentService.Get(contentType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pkg.JSON(w, http.StatusOK, doc)
}

// Create: singleton → dokümanı komple değiştirir; collection → item ekler.
// POST /api/content/{type}
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(r.PathValue("type"))

	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.contentService.Create(contentType, body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, result)
}

// Update: singleton → komple değiştirme; collection → id'li item'a shallow-merge.
// PUT /api/content/{type}
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(r.PathValue("type"))

	body, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.contentService.Update(contentType, body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pkg.JSON(w, http.StatusOK, result)
}

// Delete, collection'dan id'li item'ı siler. id query parametresiyle gelir.
// DELETE /api/content/{type}?id={id}
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(r.PathValue("type"))
	id := r.URL.Query().Get("id")

	if id == "" {
		localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("content.idRequired"))
		return
	}

	if err := h.contentService.Delete(contentType, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// decodeBody, JSON body'yi parse eder; hata durumunda yanıtı kendisi yazar.
func (h *ContentHandler) decodeBody(w http.ResponseWriter, r *http.Request) (models.Document, bool) {
	var body models.Document
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("form.invalidBody"))
		return nil, false
	}
	return body, true
}

// writeError, sık karşılaşılan içerik hatalarını localized mesajla,
// kalanını domain error map'iyle döner.
func (h *ContentHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

	switch {
	case errors.Is(err, pkg.ErrInvalidType):
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("content.invalidType"))
	case errors.Is(err, pkg.ErrInvalidStructure):
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("content.invalidStructure"))
	case errors.Is(err, pkg.ErrNotFound):
		pkg.ErrorWithMessage(w, http.StatusNotFound, localizer.T("content.notFound"))
	default:
		pkg.Error(w, err)
	}
}
