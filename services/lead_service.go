package services

import (
	"context"
	"fmt"
	"log"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/pkg/email"
	"github.com/bosnamedia/bosna-backend/repository"
)

// LeadService, public form başvurularını işler.
//
// Akış her iki formda da aynıdır: validate → kaydet → bildir.
// Bildirim best-effort'tur: email gönderilemezse hata loglanır,
// EmailSent=false döner ama kayıt geçerli kalır — başvuru kaybolmaz.
type LeadService interface {
	// SubmitLead, proje talebi formunu işler.
	SubmitLead(ctx context.Context, req *models.CreateLeadRequest) (*models.LeadResult, error)

	// SubmitContact, iletişim formunu işler.
	SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.LeadResult, error)

	// ListLeads, kayıtlı başvuruları döner (admin paneli).
	ListLeads(ctx context.Context, limit int) ([]*models.Lead, error)
}

type leadService struct {
	repo   repository.LeadRepository
	sender email.EmailSender
}

// NewLeadService, yeni bir LeadService oluşturur.
func NewLeadService(repo repository.LeadRepository, sender email.EmailSender) LeadService {
	return &leadService{repo: repo, sender: sender}
}

func (s *leadService) SubmitLead(ctx context.Context, req *models.CreateLeadRequest) (*models.LeadResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrBadRequest, err)
	}

	lead := &models.Lead{
		Source:  "lead",
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}

	return s.persistAndNotify(ctx, lead)
}

func (s *leadService) SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.LeadResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrBadRequest, err)
	}

	lead := &models.Lead{
		Source:  "contact",
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	return s.persistAndNotify(ctx, lead)
}

func (s *leadService) ListLeads(ctx context.Context, limit int) ([]*models.Lead, error) {
	return s.repo.List(ctx, limit)
}

// persistAndNotify, kaydı yapar ve bildirimi dener.
// Kayıt hatası işlemi durdurur; bildirim hatası durdurmaz.
func (s *leadService) persistAndNotify(ctx context.Context, lead *models.Lead) (*models.LeadResult, error) {
	saved, err := s.repo.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrInternal, err)
	}

	emailSent := true
	if err := s.sender.SendNotification(ctx, email.Notification{
		Source:  saved.Source,
		Name:    saved.Name,
		Company: saved.Company,
		Phone:   saved.Phone,
		Email:   saved.Email,
		Subject: saved.Subject,
		Message: saved.Message,
	}); err != nil {
		log.Printf("[lead] notification email failed (lead %s kept): %v", saved.ID, err)
		emailSent = false
	}

	return &models.LeadResult{Lead: saved, EmailSent: emailSent}, nil
}
