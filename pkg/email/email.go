// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile email gönderim detayları soyutlanır (Dependency
// Inversion). Şu anki implementasyon Resend API kullanır. İleride farklı bir
// sağlayıcıya geçmek için yeni bir implementasyon yazıp main.go'da
// değiştirmek yeterli.
//
// Bu paket dışarıya üç şey sunar:
// 1. EmailSender interface — service'ler buna bağımlı olur
// 2. NewResendSender constructor — main.go'da wire-up için
// 3. NewNopSender — RESEND_API_KEY yokken email'i devre dışı bırakır
//
// pkg/email proje içi hiçbir pakete bağımlı değildir (leaf dependency) —
// lead verisi models yerine kendi Notification struct'ı ile taşınır,
// böylece import cycle riski olmaz.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v3"
)

// Notification, site formlarından gelen bir başvurunun bildirim içeriği.
// Source, hangi formdan geldiğini belirtir ("lead" | "contact").
type Notification struct {
	Source  string
	Name    string
	Company string
	Phone   string
	Email   string
	Subject string
	Message string
}

// EmailSender, bildirim email'i gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend
// implementasyonuna değil.
type EmailSender interface {
	// SendNotification, form başvurusunu bildirim alıcısına iletir.
	// Gönderim best-effort'tur: hata caller tarafından loglanır ama
	// form kaydını geri almaz.
	SendNotification(ctx context.Context, n Notification) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client      *resend.Client
	fromEmail   string // Gönderici adresi (ör: no-reply@bosnamedia.com)
	notifyEmail string // Bildirim alıcısı (ör: info@bosnamedia.com)
	siteURL     string // Public site URL'i — mail altbilgisinde kullanılır
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Resend'de doğrulanmış domain altında bir gönderici adresi.
// notifyEmail: Form bildirimlerinin gideceği adres.
func NewResendSender(apiKey, fromEmail, notifyEmail, siteURL string) EmailSender {
	return &resendSender{
		client:      resend.NewClient(apiKey),
		fromEmail:   fromEmail,
		notifyEmail: notifyEmail,
		siteURL:     siteURL,
	}
}

// SendNotification, form başvurusunu HTML email olarak iletir.
//
// Reply-To başvurudaki email adresine set edilir — ekip mail client'ından
// doğrudan "yanıtla" diyebilir.
func (s *resendSender) SendNotification(ctx context.Context, n Notification) error {
	subject := n.Subject
	if subject == "" {
		if n.Source == "contact" {
			subject = fmt.Sprintf("Yeni iletişim mesajı — %s", n.Name)
		} else {
			subject = fmt.Sprintf("Yeni proje talebi — %s", n.Name)
		}
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Bosna Media <%s>", s.fromEmail),
		To:      []string{s.notifyEmail},
		Subject: subject,
		Html:    s.buildHTML(n),
	}
	if n.Email != "" {
		params.ReplyTo = n.Email
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

// buildHTML, bildirim mail'inin basit HTML gövdesini üretir.
// Form alanları kullanıcı girdisidir — HTML escape şart.
func (s *resendSender) buildHTML(n Notification) string {
	var rows strings.Builder

	appendRow := func(label, value string) {
		if value == "" {
			return
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 16px;color:#64748b;font-size:13px;white-space:nowrap;">%s</td>`+
				`<td style="padding:8px 16px;color:#0f172a;font-size:14px;">%s</td></tr>`,
			html.EscapeString(label), html.EscapeString(value)))
	}

	appendRow("İsim", n.Name)
	appendRow("Firma", n.Company)
	appendRow("Telefon", n.Phone)
	appendRow("Email", n.Email)
	appendRow("Mesaj", n.Message)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f8fafc;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:32px 0;">
    <tr>
      <td align="center">
        <table width="520" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
          <tr><td>
            <h1 style="color:#0f172a;font-size:20px;margin:0 0 4px 0;">Bosna Media</h1>
            <p style="color:#64748b;font-size:14px;margin:0 0 24px 0;">Siteden yeni bir başvuru geldi.</p>
            <table cellpadding="0" cellspacing="0" style="width:100%%;border-collapse:collapse;">%s</table>
            <p style="color:#94a3b8;font-size:12px;margin:24px 0 0 0;">%s</p>
          </td></tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, rows.String(), html.EscapeString(s.siteURL))
}

// nopSender, email gönderimini devre dışı bırakan EmailSender.
// RESEND_API_KEY set edilmemişse main.go bunu wire eder —
// service katmanı nil kontrolü yapmak zorunda kalmaz.
type nopSender struct{}

// NewNopSender, hiçbir şey göndermeyen EmailSender döner.
func NewNopSender() EmailSender {
	return nopSender{}
}

func (nopSender) SendNotification(ctx context.Context, n Notification) error {
	return fmt.Errorf("email sending is not configured")
}
