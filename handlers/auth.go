// Package handlers, HTTP endpoint'lerinin giriş noktalarını barındırır.
//
// Handler'lar incedir: request'i parse eder, servisi çağırır, yanıtı yazar.
// İş kuralları services katmanındadır.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosnamedia/bosna-backend/config"
	"github.com/bosnamedia/bosna-backend/middleware"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/pkg/ratelimit"
	"github.com/bosnamedia/bosna-backend/services"
)

// AuthHandler, login/logout/session endpoint'leri.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.Limiter
	production   bool
}

// NewAuthHandler, yeni bir AuthHandler oluşturur.
// loginLimiter brute-force denemelerini IP bazında yavaşlatır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.Limiter, production bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		production:   production,
	}
}

// loginRequest, POST /api/auth/login body'si.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login, kimlik bilgilerini doğrular ve oturum cookie'sini set eder.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
	ip := ratelimit.ExtractIP(r)

	if res := h.loginLimiter.Check(ip); !res.Allowed {
		retry := ratelimit.FormatRetryMessage(h.loginLimiter.RetryAfterSeconds(ip))
		pkg.ErrorLocalized(w, pkg.ErrRateLimited,
			localizer.TWithParams("auth.tooManyAttempts", map[string]string{"retry": retry}))
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, localizer.T("form.invalidBody"))
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		// Hangi alanın yanlış olduğu bilinçli olarak ayrıştırılıyor —
		// admin panel formunda alana özel hata gösterilir.
		switch {
		case errors.Is(err, services.ErrInvalidUsername):
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, localizer.T("auth.invalidUsername"))
		case errors.Is(err, services.ErrInvalidPassword):
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, localizer.T("auth.invalidPassword"))
		default:
			pkg.Error(w, err)
		}
		return
	}

	// Doğru şifre girildi — meşru kullanıcının deneme sayacı temizlenir
	h.loginLimiter.Reset(ip)

	h.setSessionCookie(w, token)
	pkg.JSON(w, http.StatusOK, map[string]any{
		"user": map[string]string{"username": req.Username},
	})
}

// Logout, oturum cookie'sini temizler.
// Server tarafında oturum kaydı tutulmadığı için yapılacak başka bir şey yok.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

	h.clearSessionCookie(w)
	pkg.JSON(w, http.StatusOK, map[string]string{
		"message": localizer.T("auth.loggedOut"),
	})
}

// Session, mevcut oturumun durumunu döner.
// Geçersiz/eksik cookie hata DEĞİLDİR — admin paneli bu endpoint'le
// "login ekranı mı, panel mi?" kararını verir.
// GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		pkg.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	claims, err := h.authService.VerifyToken(cookie.Value)
	if err != nil {
		pkg.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          map[string]string{"username": claims.Username},
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}
