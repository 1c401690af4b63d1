// Package services, iş mantığı katmanı (Business Logic Layer).
//
// Handler'lar HTTP detaylarını, repository'ler depolamayı bilir;
// kuralların kendisi (kim login olabilir, içerik nasıl güncellenir,
// dosya nasıl işlenir) bu katmanda yaşar.
package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bosnamedia/bosna-backend/config"
	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
)

// Login hataları. İkisi de pkg.ErrUnauthorized'ı sarar (→ 401) ama ayrı
// değerlerdir: handler hangi alanın yanlış olduğunu ayrı mesajla döner.
var (
	ErrInvalidUsername = fmt.Errorf("%w: invalid username", pkg.ErrUnauthorized)
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", pkg.ErrUnauthorized)
)

// tokenIssuer, üretilen session token'larının iss claim'i.
const tokenIssuer = "bosna-backend"

// AuthService, admin kimlik doğrulama arayüzü.
type AuthService interface {
	// Login, kimlik bilgilerini doğrular ve imzalı session token döner.
	Login(username, password string) (string, error)

	// VerifyToken, token'ın imzasını ve süresini doğrular.
	// Geçersiz/expired token → pkg.ErrUnauthorized sarmalı hata.
	VerifyToken(token string) (*models.SessionClaims, error)
}

type authService struct {
	admin config.AdminConfig
}

// NewAuthService, yeni bir AuthService oluşturur.
func NewAuthService(admin config.AdminConfig) AuthService {
	return &authService{admin: admin}
}

// Login, kullanıcı adı ve şifreyi doğrular.
//
// Şifre kontrolü iki modda çalışır:
//   - ADMIN_PASSWORD_HASH set edilmişse bcrypt karşılaştırması
//   - Değilse düz metin karşılaştırması (constant-time)
func (s *authService) Login(username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) != 1 {
		return "", ErrInvalidUsername
	}

	if s.admin.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidPassword
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) != 1 {
			return "", ErrInvalidPassword
		}
	}

	return s.createTokenAt(time.Now())
}

// createTokenAt, verilen zamana göre imzalı bir session token üretir.
// time.Now yerine parametre almasının sebebi expiry sınırının test edilebilmesi.
func (s *authService) createTokenAt(now time.Time) (string, error) {
	claims := models.SessionClaims{
		Username: s.admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.admin.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// VerifyToken, token imzasını, algoritmasını, issuer'ını ve süresini doğrular.
func (s *authService) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return []byte(s.admin.Secret), nil
		},
		// alg'i sabitle: "none" veya RS256 gibi bir algoritmayla
		// imzalanmış token'lar parse aşamasında reddedilir
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	return claims, nil
}
