// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her değerin kaynak kodda bir fallback'i vardır — uygulama hiçbir env
// variable olmadan da ayağa kalkar (development kolaylığı). Production'da
// gerçek değerler environment'tan gelir.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SessionDuration, admin oturumunun geçerlilik süresi.
// Token hem imza hem expiry kontrolünden geçer; cookie MaxAge'i de buna eşittir.
const SessionDuration = 24 * time.Hour

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Content   ContentConfig
	Upload    UploadConfig
	Database  DatabaseConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host        string
	Port        int
	Environment string // "development" | "production" — cookie Secure flag'ini belirler
	SiteURL     string // Public site URL'i (email linklerinde kullanılır)
}

// AdminConfig, admin panel kimlik bilgileri.
//
// DİKKAT: Fallback şifre kaynak kodda duruyor — projenin mevcut deploy
// pratiğinin devamı. Production'da ADMIN_PASSWORD (veya tercihen bcrypt
// hash'li ADMIN_PASSWORD_HASH) mutlaka set edilmeli.
type AdminConfig struct {
	Username     string
	Password     string // Düz metin karşılaştırma — PasswordHash boşsa kullanılır
	PasswordHash string // bcrypt hash — set edilirse Password yerine bu doğrulanır
	Secret       string // Session token'larını imzalayan HMAC anahtarı
}

// ContentConfig, JSON içerik dosyalarının ayarları.
type ContentConfig struct {
	DataDir string // İçerik JSON dosyalarının dizini (ör: ./data/content)
}

// UploadConfig, dosya yükleme ayarları.
type UploadConfig struct {
	Dir     string // Yüklenen dosyaların kök dizini
	MaxSize int64  // Byte cinsinden max dosya boyutu (varsayılan: 100MB)
}

// DatabaseConfig, SQLite database ayarları (lead kayıtları için).
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/bosna.db)
}

// EmailConfig, Resend üzerinden bildirim email'i ayarları.
// APIKey boşsa email gönderimi devre dışı kalır — lead kaydı yine de
// yapılır, sadece bildirim atlanır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string // Gönderici adresi (Resend'de doğrulanmış domain altında)
	NotifyEmail  string // Lead/iletişim bildirimlerinin alıcısı
}

// RateLimitConfig, public form ve login endpoint'lerinin rate limit ayarları.
type RateLimitConfig struct {
	LeadMax     int           // Pencere başına izin verilen form gönderimi
	LeadWindow  time.Duration // Form rate limit penceresi
	LoginMax    int           // Pencere başına izin verilen login denemesi
	LoginWindow time.Duration // Login rate limit penceresi
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler; dosya yoksa sessizce devam eder.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "104857600"), 10, 64) // 100MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        port,
			Environment: getEnv("SERVER_ENVIRONMENT", "development"),
			SiteURL:     getEnv("SITE_URL", "https://bosnamedia.com"),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "bosna2025"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Secret:       getEnv("SESSION_SECRET", "bosna-gizli-anahtar-2025"),
		},
		Content: ContentConfig{
			DataDir: getEnv("CONTENT_DATA_DIR", "./data/content"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./public/uploads"),
			MaxSize: maxSize,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/bosna.db"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("EMAIL_FROM", "no-reply@bosnamedia.com"),
			NotifyEmail:  getEnv("NOTIFY_EMAIL", "info@bosnamedia.com"),
		},
		RateLimit: RateLimitConfig{
			LeadMax:     5,
			LeadWindow:  15 * time.Minute,
			LoginMax:    5,
			LoginWindow: 2 * time.Minute,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction, Secure cookie gibi production-only davranışları belirler.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
