// Package main, bosna-backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//   1. Config'i yükle
//   2. Database'i başlat (lead kayıtları)
//   3. i18n çevirilerini yükle
//   4. Upload dizinini oluştur
//   5. Repository'leri oluştur
//   6. Service'leri oluştur (repository'ler ile)
//   7. Rate limiter'ları oluştur
//   8. Handler'ları oluştur (service'ler ile)
//   9. HTTP router'ı kur, route'ları bağla
//  10. CORS yapılandır
//  11. HTTP Server'ı başlat
//  12. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/bosnamedia/bosna-backend/config"
	"github.com/bosnamedia/bosna-backend/database"
	"github.com/bosnamedia/bosna-backend/handlers"
	"github.com/bosnamedia/bosna-backend/pkg/email"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/pkg/ratelimit"
	"github.com/bosnamedia/bosna-backend/repository"
	"github.com/bosnamedia/bosna-backend/services"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] bosna-backend starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d, env=%s)", cfg.Server.Port, cfg.Server.Environment)

	// ─── 2. Database (lead kayıtları) ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to access embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. i18n ───
	localesFS, err := fs.Sub(i18n.EmbeddedLocales, "locales")
	if err != nil {
		log.Fatalf("[main] failed to access embedded locales: %v", err)
	}
	if err := i18n.Load(localesFS); err != nil {
		log.Fatalf("[main] failed to load i18n translations: %v", err)
	}

	// ─── 4. Upload Dizini ───
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		log.Fatalf("[main] failed to create upload directory: %v", err)
	}

	// ─── 5. Repository Layer ───
	contentRepo, err := repository.NewFileContentRepository(cfg.Content.DataDir)
	if err != nil {
		log.Fatalf("[main] failed to initialize content repository: %v", err)
	}
	leadRepo := repository.NewSQLiteLeadRepository(db.Conn)

	// ─── 6. Service Layer ───
	// Email: API key yoksa NopSender — lead kaydı çalışır, bildirim atlanır
	var sender email.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.NotifyEmail, cfg.Server.SiteURL)
		log.Println("[main] email notifications enabled (resend)")
	} else {
		sender = email.NewNopSender()
		log.Println("[main] RESEND_API_KEY not set, email notifications disabled")
	}

	authService := services.NewAuthService(cfg.Admin)
	contentService := services.NewContentService(contentRepo)
	uploadService := services.NewUploadService(cfg.Upload.Dir)
	leadService := services.NewLeadService(leadRepo, sender)

	// ─── 7. Rate Limiters ───
	loginLimiter := ratelimit.New(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow)
	defer loginLimiter.Stop()
	leadLimiter := ratelimit.New(cfg.RateLimit.LeadMax, cfg.RateLimit.LeadWindow)
	defer leadLimiter.Stop()

	// ─── 8. Handler Layer ───
	h := &Handlers{
		Auth:    handlers.NewAuthHandler(authService, loginLimiter, cfg.Server.IsProduction()),
		Content: handlers.NewContentHandler(contentService),
		Upload:  handlers.NewUploadHandler(uploadService, cfg.Upload.MaxSize),
		Lead:    handlers.NewLeadHandler(leadService, leadLimiter),
	}

	// ─── 9. Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, authService, cfg.Upload.Dir)

	// ─── 10. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.SiteURL, "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept-Language"},
		AllowCredentials: true, // Session cookie'si cross-origin isteklerde taşınmalı
	}).Handler(mux)

	// ─── 11. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler,
		ReadTimeout:  60 * time.Second, // Büyük video upload'ları için geniş
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	// ─── 12. Graceful Shutdown ───
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[main] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped")
}
