package repository

import (
	"context"
	"fmt"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"

	"github.com/jmoiron/sqlx"
)

type leadRepository struct {
	db *sqlx.DB
}

func newLeadRepository(db *sqlx.DB) *leadRepository {
	return &leadRepository{
		db: db,
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
		INSERT INTO leads (id, name, email, phone, message, created_at)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message, lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("db insert lead: %w", err)
	}

	return nil
}

func (r *leadRepository) GetAll(ctx context.Context) ([]domain.Lead, error) {
	const query = `
		SELECT bin_to_uuid(id) as id, name, email, phone, message, created_at
		FROM leads ORDER BY created_at DESC
	`
	var leads []domain.Lead
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}

	return leads, nil
}
