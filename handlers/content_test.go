package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosnamedia/bosna-backend/middleware"
	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/repository"
	"github.com/bosnamedia/bosna-backend/services"
)

// newContentMux, content route'larını auth middleware'i ile gerçek router
// üzerinden kurar — {type} path parametresi ancak ServeMux ile çözülür.
func newContentMux(t *testing.T, seed map[models.ContentType]models.Document) (*http.ServeMux, *http.Cookie) {
	t.Helper()

	repo, err := repository.NewFileContentRepository(t.TempDir())
	require.NoError(t, err)
	for contentType, doc := range seed {
		require.NoError(t, repo.Write(contentType, doc))
	}

	authService := testAuthService()
	h := NewContentHandler(services.NewContentService(repo))
	requireAuth := middleware.RequireAuth(authService)

	mux := http.NewServeMux()
	mux.Handle("GET /api/content/{type}", requireAuth(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/content/{type}", requireAuth(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/content/{type}", requireAuth(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/content/{type}", requireAuth(http.HandlerFunc(h.Delete)))

	token, err := authService.Login("admin", "bosna2025")
	require.NoError(t, err)
	cookie := &http.Cookie{Name: middleware.SessionCookieName, Value: token}

	return mux, cookie
}

func doJSON(mux *http.ServeMux, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestContentHandler_RequiresAuth(t *testing.T) {
	mux, _ := newContentMux(t, map[models.ContentType]models.Document{
		"clients": {"clients": []any{}},
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := doJSON(mux, http.MethodGet, "/api/content/clients", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid cookie", func(t *testing.T) {
		bad := &http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"}
		rec := doJSON(mux, http.MethodGet, "/api/content/clients", "", bad)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestContentHandler_CRUDFlow(t *testing.T) {
	mux, cookie := newContentMux(t, map[models.ContentType]models.Document{
		"clients": {"clients": []any{}},
	})

	// POST: yeni item
	rec := doJSON(mux, http.MethodPost, "/api/content/clients", `{"name":"Acme"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeResponse(t, rec).Data.(map[string]any)
	id := created["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Acme", created["name"])
	assert.Equal(t, float64(1), created["order"])

	// GET: doküman item'ı içeriyor
	rec = doJSON(mux, http.MethodGet, "/api/content/clients", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeResponse(t, rec).Data.(map[string]any)
	items := doc["clients"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].(map[string]any)["id"])

	// PUT: alan güncelle
	rec = doJSON(mux, http.MethodPut, "/api/content/clients", `{"id":"`+id+`","name":"Acme A.Ş."}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeResponse(t, rec).Data.(map[string]any)
	assert.Equal(t, "Acme A.Ş.", updated["name"])

	// DELETE: id query param ile
	rec = doJSON(mux, http.MethodDelete, "/api/content/clients?id="+id, "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(mux, http.MethodGet, "/api/content/clients", "", cookie)
	doc = decodeResponse(t, rec).Data.(map[string]any)
	assert.Empty(t, doc["clients"].([]any))
}

func TestContentHandler_Errors(t *testing.T) {
	mux, cookie := newContentMux(t, map[models.ContentType]models.Document{
		"clients": {"clients": []any{}},
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := doJSON(mux, http.MethodGet, "/api/content/users", "", cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("put nonexistent id", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPut, "/api/content/clients", `{"id":"ghost","name":"X"}`, cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete without id", func(t *testing.T) {
		rec := doJSON(mux, http.MethodDelete, "/api/content/clients", "", cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/api/content/clients", `{broken`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContentHandler_SingletonOverwrite(t *testing.T) {
	mux, cookie := newContentMux(t, map[models.ContentType]models.Document{
		"site-settings": {"siteName": "Bosna Media", "phone": "+90 555"},
	})

	rec := doJSON(mux, http.MethodPut, "/api/content/site-settings", `{"siteName":"Yeni İsim"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(mux, http.MethodGet, "/api/content/site-settings", "", cookie)
	doc := decodeResponse(t, rec).Data.(map[string]any)
	assert.Equal(t, "Yeni İsim", doc["siteName"])
	assert.NotContains(t, doc, "phone")
}
