package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Naveen122004/portfolio-service/internal/domain"
)

// ContactRepository stores contact form messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, subject, body)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)
}
