// Package middleware, HTTP istekleri için ara katman fonksiyonlarını barındırır.
package middleware

import (
	"net/http"

	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/i18n"
	"github.com/bosnamedia/bosna-backend/services"
)

// SessionCookieName, admin oturum cookie'sinin adı.
// Hem login handler'ı (yazarken) hem bu middleware (okurken) bu sabiti kullanır.
const SessionCookieName = "bosna_session"

// RequireAuth, korumalı endpoint'leri admin oturumuna kilitler.
//
// "Oturum geçerli mi?" sorusunun TEK cevaplayıcısı AuthService.VerifyToken'dır;
// middleware sadece cookie'yi okuyup ona sorar. Cookie yoksa, imza tutmuyorsa
// veya süresi dolmuşsa istek 401 ile kesilir, handler'a hiç ulaşmaz.
func RequireAuth(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			localizer := i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				pkg.ErrorWithMessage(w, http.StatusUnauthorized, localizer.T("auth.unauthorized"))
				return
			}

			if _, err := authService.VerifyToken(cookie.Value); err != nil {
				pkg.ErrorWithMessage(w, http.StatusUnauthorized, localizer.T("auth.unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
