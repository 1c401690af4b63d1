package repository

import (
	"context"

	"github.com/bosnamedia/bosna-backend/models"
)

// LeadRepository, form başvurusu kayıtlarının arayüzü.
type LeadRepository interface {
	// Create, yeni bir başvuru kaydeder ve oluşan kaydı döner.
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)

	// List, en yeni başvurudan başlayarak kayıtları döner (admin paneli için).
	List(ctx context.Context, limit int) ([]*models.Lead, error)
}
