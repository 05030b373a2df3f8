package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-analytics/internal/domain"
)

// ContactRepository реализует хранение сообщений контактной формы в PostgreSQL.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository создает новый экземпляр ContactRepository.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &ContactRepository{db: db}
}

// Create сохраняет сообщение и проставляет ID и время создания.
func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}
