// Lead ve iletişim formu modelleri.
//
// İki public form vardır:
//   - Lead formu (proje talebi): isim + telefon zorunlu, firma/email/mesaj opsiyonel
//   - İletişim formu: isim + email + mesaj zorunlu
//
// İkisi de aynı leads tablosuna yazılır; source kolonu hangi formdan
// geldiğini ayırt eder.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailRegex, basit email format kontrolü.
// Tam RFC 5322 validasyonu bilinçli olarak yapılmıyor —
// gerçek doğrulama zaten mail'in ulaşıp ulaşmadığıdır.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailRegex, email format regex'ini döner (servislerde tekrar kullanım için).
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// Lead, bir form başvurusunun kalıcı kaydı.
type Lead struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // "lead" | "contact"
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeadRequest, POST /api/lead body'si.
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate, zorunlu alanları ve email formatını kontrol eder.
func (r *CreateLeadRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)

	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ContactRequest, POST /api/email body'si.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate, zorunlu alanları ve email formatını kontrol eder.
func (r *ContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)

	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// LeadResult, form endpoint'lerinin yanıtı.
// EmailSent=false, kaydın yapıldığını ama bildirimin gönderilemediğini
// belirtir — bildirim hatası başvuruyu geçersiz kılmaz.
type LeadResult struct {
	Lead      *Lead `json:"lead"`
	EmailSent bool  `json:"emailSent"`
}
