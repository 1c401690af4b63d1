package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bosnamedia/bosna-backend/models"
)

// SQLiteLeadRepository, LeadRepository'nin SQLite implementasyonu.
type SQLiteLeadRepository struct {
	db *sql.DB
}

// NewSQLiteLeadRepository, yeni bir SQLite lead deposu oluşturur.
func NewSQLiteLeadRepository(db *sql.DB) *SQLiteLeadRepository {
	return &SQLiteLeadRepository{db: db}
}

// Create, yeni bir form başvurusu kaydeder.
// ID uygulama tarafında üretilir; created_at DB tarafından atanır ve
// RETURNING ile geri okunur.
func (r *SQLiteLeadRepository) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if lead.ID == "" {
		lead.ID = GenerateID()
	}

	query := `
		INSERT INTO leads (id, source, name, company, phone, email, subject, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		lead.ID, lead.Source, lead.Name, lead.Company,
		lead.Phone, lead.Email, lead.Subject, lead.Message,
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	lead.CreatedAt = createdAt
	return lead, nil
}

// List, başvuruları en yeniden eskiye doğru döner.
// limit <= 0 ise makul bir üst sınır uygulanır.
func (r *SQLiteLeadRepository) List(ctx context.Context, limit int) ([]*models.Lead, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, source, name, company, phone, email, subject, message, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(
			&lead.ID, &lead.Source, &lead.Name, &lead.Company,
			&lead.Phone, &lead.Email, &lead.Subject, &lead.Message,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}
