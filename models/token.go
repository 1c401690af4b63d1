package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims, admin oturum token'ının içindeki veriler (payload).
//
// Token HMAC-SHA256 ile imzalanır — eski sürümdeki "base64 içinde paylaşılan
// secret eşitliği" yaklaşımının yerini aldı. Secret artık imza anahtarıdır,
// token içinde TAŞINMAZ; kurcalanan token imza kontrolünden geçemez.
//
// Expiry, RegisteredClaims.ExpiresAt üzerinden her doğrulamada kontrol edilir
// (oturum süresi: 24 saat). Server tarafında oturum kaydı tutulmaz —
// logout yalnızca client cookie'sini temizler.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
