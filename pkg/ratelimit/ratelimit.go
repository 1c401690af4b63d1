// Package ratelimit — IP bazlı sabit pencereli (fixed window) rate limiting.
//
// Tasarım:
// - Her anahtar (genellikle IP adresi) için pencere içinde istek sayısı tutulur.
// - Pencere süresi dolduğunda sayaç sıfırlanır (yeni pencere başlar).
// - Pencere içinde maxRequests aşılırsa istek reddedilir.
// - Background goroutine süresi dolmuş bucket'ları temizler (memory leak engeli).
//
// Neden in-memory?
// Tek instance deploy için yeterli; Redis gibi harici bir sayaç deposu
// bağımlılığı eklemeye değmez. Yatay ölçeklenen bir deployment'ta sayaçlar
// instance başına ayrışır — bu bilinen ve kabul edilen bir sınırdır.
//
// Eşzamanlılık: Go'nun HTTP server'ı her request'i ayrı goroutine'de çalıştırır.
// Paylaşılan bucket map'i bu yüzden sync.Mutex ile korunur — single-threaded
// event loop varsayımı Go'da GEÇERLİ DEĞİLDİR.
//
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency).
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// bucket, bir anahtar için istek sayacı ve pencere başlangıç zamanı tutar.
type bucket struct {
	count       int
	windowStart time.Time
}

// Result, tek bir Check çağrısının sonucu.
type Result struct {
	Allowed   bool          // İstek kabul edildi mi
	Remaining int           // Pencere içinde kalan istek hakkı
	ResetIn   time.Duration // Pencerenin sıfırlanmasına kalan süre
}

// Limiter, anahtar bazlı sabit pencereli rate limiter.
//
// Kullanım:
//
//	limiter := ratelimit.New(5, 15*time.Minute)
//	res := limiter.Check(ip)
//	if !res.Allowed { return 429 }
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration
	stopCleanup chan struct{}
}

// New, yeni rate limiter oluşturur ve arka plan temizleme goroutine'ini başlatır.
//
// maxRequests: Pencere başına izin verilen istek sayısı (ör: 5).
// window: Pencere süresi (ör: 15*time.Minute → 15 dakikada 5 istek).
func New(maxRequests int, window time.Duration) *Limiter {
	rl := &Limiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Check, verilen anahtarın istek hakkını kontrol eder ve sayacı artırır.
//
// Her çağrı sayacı artırır (istek başarılı olsun veya olmasın).
// Pencere süresi dolmuşsa sayaç sıfırlanıp yeni pencere başlar.
func (rl *Limiter) Check(key string) Result {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists || now.Sub(b.windowStart) > rl.window {
		// İlk istek veya pencere dolmuş — yeni pencere başlat
		b = &bucket{count: 1, windowStart: now}
		rl.buckets[key] = b
	} else {
		b.count++
	}

	remaining := rl.maxRequests - b.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   b.count <= rl.maxRequests,
		Remaining: remaining,
		ResetIn:   rl.window - now.Sub(b.windowStart),
	}
}

// Reset, anahtarın sayacını sıfırlar.
// Başarılı login sonrası çağrılır — meşru kullanıcı doğru şifreyi
// girdiğinde sayaç temizlenir, sonraki oturumlarında bloke olmaz.
func (rl *Limiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.buckets, key)
}

// RetryAfterSeconds, limit aşıldığında kalan bekleme süresini saniye
// cinsinden döner. HTTP Retry-After header değeri olarak kullanılır.
func (rl *Limiter) RetryAfterSeconds(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists {
		return 0
	}

	remaining := rl.window - time.Since(b.windowStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1 // +1 yuvarlama — client tam süreyi beklesin
}

// Stop, arka plan temizleme goroutine'ini durdurur.
// Graceful shutdown ve testlerde goroutine leak'i önlemek için.
func (rl *Limiter) Stop() {
	close(rl.stopCleanup)
}

// cleanupLoop, arka planda süresi dolmuş bucket'ları temizler.
// Her 60 saniyede bir çalışır.
func (rl *Limiter) cleanupLoop() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanup, pencere süresi geçmiş tüm bucket'ları siler.
func (rl *Limiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window {
			delete(rl.buckets, key)
		}
	}
}

// ExtractIP, HTTP request'ten client IP adresini çıkarır.
//
// Öncelik sırası:
// 1. X-Forwarded-For header (reverse proxy arkasındaysa, ilk IP)
// 2. X-Real-IP header (nginx gibi proxy'ler ekler)
// 3. RemoteAddr (doğrudan bağlantı)
//
// Production'da uygulama nginx/Caddy arkasındadır — RemoteAddr her zaman
// proxy'nin IP'sidir, gerçek client IP'si header'lardadır.
func ExtractIP(r *http.Request) string {
	// X-Forwarded-For: client, proxy1, proxy2 — ilk değer gerçek client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, kalan süreyi okunabilir formata çevirir.
// Örn: 120 → "2 minute(s)", 45 → "45 second(s)"
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
