package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/pkg/ratelimit"
	"github.com/bosnamedia/bosna-backend/services"
)

// LeadHandler, public form endpoint'leri (/api/lead, /api/email) ve
// admin tarafı lead listesi.
//
// Public endpoint'ler auth gerektirmez ama IP bazlı rate limit arkasındadır —
// form spam'i sayaçla yavaşlatılır.
type LeadHandler struct {
	leadService services.LeadService
	limiter     *ratelimit.Limiter
}

// NewLeadHandler, yeni bir LeadHandler oluşturur.
func NewLeadHandler(leadService services.LeadService, limiter *ratelimit.Limiter) *LeadHandler {
	return &LeadHandler{leadService: leadService, limiter: limiter}
}

// SubmitLead, proje talebi formunu işler.
// POST /api/lead
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

	if !h.allow(w, r, localizer) {
		return
	}

	var req models.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("form.invalidBody"))
		return
	}

	result, err := h.leadService.SubmitLead(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]any{
		"message":   localizer.T("form.received"),
		"emailSent": result.EmailSent,
	})
}

// SubmitContact, iletişim formunu işler.
// POST /api/email
func (h *LeadHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

	if !h.allow(w, r, localizer) {
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("form.invalidBody"))
		return
	}

	result, err := h.leadService.SubmitContact(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]any{
		"message":   localizer.T("form.received"),
		"emailSent": result.EmailSent,
	})
}

// ListLeads, kayıtlı başvuruları döner. Auth middleware'inin arkasındadır.
// GET /api/leads
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.ListLeads(r.Context(), 100)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, leads)
}

// allow, IP'nin form gönderim hakkını kontrol eder; limit aşıldıysa
// 429 + Retry-After yazar ve false döner.
func (h *LeadHandler) allow(w http.ResponseWriter, r *http.Request, localizer *i18n.Localizer) bool {
	ip := ratelimit.ExtractIP(r)

	if res := h.limiter.Check(ip); !res.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(h.limiter.RetryAfterSeconds(ip)))
		pkg.ErrorLocalized(w, pkg.ErrRateLimited, localizer.T("form.rateLimited"))
		return false
	}

	return true
}
