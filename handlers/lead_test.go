package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg/email"
	"github.com/bosnamedia/bosna-backend/pkg/ratelimit"
	"github.com/bosnamedia/bosna-backend/services"
)

// memLeadRepo, handler testleri için in-memory LeadRepository.
type memLeadRepo struct {
	leads []*models.Lead
}

func (m *memLeadRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	lead.ID = "l1"
	lead.CreatedAt = time.Now()
	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *memLeadRepo) List(ctx context.Context, limit int) ([]*models.Lead, error) {
	return m.leads, nil
}

func newLeadHandler(t *testing.T, maxRequests int) (*LeadHandler, *memLeadRepo) {
	t.Helper()

	repo := &memLeadRepo{}
	limiter := ratelimit.New(maxRequests, 15*time.Minute)
	t.Cleanup(limiter.Stop)

	svc := services.NewLeadService(repo, email.NewNopSender())
	return NewLeadHandler(svc, limiter), repo
}

func postForm(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestLeadHandler_SubmitLead(t *testing.T) {
	h, repo := newLeadHandler(t, 5)

	rec := postForm(h.SubmitLead, "/api/lead", `{"name":"Mehmet","phone":"555"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	// Email yapılandırılmamış (NopSender) — kayıt yine de tutulur
	data := resp.Data.(map[string]any)
	assert.Equal(t, false, data["emailSent"])
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "lead", repo.leads[0].Source)
}

func TestLeadHandler_SubmitLead_Invalid(t *testing.T) {
	h, repo := newLeadHandler(t, 5)

	rec := postForm(h.SubmitLead, "/api/lead", `{"name":"","phone":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.leads)
}

func TestLeadHandler_SubmitContact(t *testing.T) {
	h, repo := newLeadHandler(t, 5)

	rec := postForm(h.SubmitContact, "/api/email",
		`{"name":"Ali","email":"ali@example.com","message":"Merhaba"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "contact", repo.leads[0].Source)
}

func TestLeadHandler_RateLimit(t *testing.T) {
	h, _ := newLeadHandler(t, 2)

	body := `{"name":"Mehmet","phone":"555"}`
	require.Equal(t, http.StatusCreated, postForm(h.SubmitLead, "/api/lead", body).Code)
	require.Equal(t, http.StatusCreated, postForm(h.SubmitLead, "/api/lead", body).Code)

	rec := postForm(h.SubmitLead, "/api/lead", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Lead ve contact formları aynı limiter'ı paylaşır
	rec = postForm(h.SubmitContact, "/api/email",
		`{"name":"Ali","email":"ali@example.com","message":"Merhaba"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLeadHandler_ListLeads(t *testing.T) {
	h, repo := newLeadHandler(t, 5)
	repo.leads = append(repo.leads, &models.Lead{ID: "l0", Source: "lead", Name: "Eski"})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	h.ListLeads(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Eski", data[0].(map[string]any)["name"])
}
