// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// İki erişim seviyesi vardır:
//   - public: form gönderimi ve statik upload servisi (rate limit handler içinde)
//   - auth: admin oturumu gerektiren her şey (içerik CRUD, upload, lead listesi)
package main

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bosnamedia/bosna-backend/handlers"
	"github.com/bosnamedia/bosna-backend/middleware"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/services"
)

// Handlers, tüm handler'ları tek struct'ta toplar — main.go'daki wire-up
// ile route tanımları arasındaki taşıyıcı.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Content *handlers.ContentHandler
	Upload  *handlers.UploadHandler
	Lead    *handlers.LeadHandler
}

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService, uploadDir string) {
	// ─── Middleware ───
	requireAuth := middleware.RequireAuth(authService)

	auth := func(handler http.HandlerFunc) http.Handler {
		return requireAuth(handler)
	}

	// ─── Health ───
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// ─── Auth ───
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/session", h.Auth.Session)

	// ─── Content (admin) ───
	mux.Handle("GET /api/content/{type}", auth(h.Content.Get))
	mux.Handle("POST /api/content/{type}", auth(h.Content.Create))
	mux.Handle("PUT /api/content/{type}", auth(h.Content.Update))
	mux.Handle("DELETE /api/content/{type}", auth(h.Content.Delete))

	// ─── Upload (admin) ───
	mux.Handle("POST /api/upload", auth(h.Upload.Upload))

	// ─── Leads ───
	mux.HandleFunc("POST /api/lead", h.Lead.SubmitLead)
	mux.HandleFunc("POST /api/email", h.Lead.SubmitContact)
	mux.Handle("GET /api/leads", auth(h.Lead.ListLeads))

	// ─── Static: yüklenen medya ───
	mux.Handle("GET /uploads/", uploadsFileServer(uploadDir))
}

// uploadsFileServer, /uploads/ altındaki medyayı servis eder.
// Path traversal koruması: temizlenmiş path upload dizininin dışına
// çıkıyorsa istek reddedilir.
func uploadsFileServer(uploadDir string) http.Handler {
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cleaned := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/uploads/"))
		if strings.HasPrefix(cleaned, "..") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
