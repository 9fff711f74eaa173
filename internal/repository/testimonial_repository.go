package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Naveen122004/portfolio-service/internal/domain"
)

// TestimonialFilter narrows listing to a set of moderation states. An empty
// filter returns every record.
type TestimonialFilter struct {
	Statuses []domain.TestimonialStatus
}

// TestimonialRepository encapsulates testimonial persistence. Reads always
// hit the store; rows are never held between requests.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error)
	UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.TestimonialStatus]int, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository returns a Postgres-backed implementation.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (name, email, role, company, message, rating, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		t.Name,
		t.Email,
		t.Role,
		t.Company,
		t.Message,
		t.Rating,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	const query = `
        SELECT id, name, email, role, company, message, rating, status, created_at
        FROM testimonials WHERE id=$1`

	var t domain.Testimonial
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Email,
		&t.Role,
		&t.Company,
		&t.Message,
		&t.Rating,
		&t.Status,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error) {
	base := `SELECT id, name, email, role, company, message, rating, status, created_at
             FROM testimonials`
	clauses := []string{"1=1"}
	args := []any{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`,
		base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTestimonials(rows)
}

func (r *testimonialRepository) UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	const query = `UPDATE testimonials SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM testimonials WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) CountByStatus(ctx context.Context) (map[domain.TestimonialStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM testimonials GROUP BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TestimonialStatus]int)
	for rows.Next() {
		var status domain.TestimonialStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanTestimonials(rows pgx.Rows) ([]domain.Testimonial, error) {
	var result []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Email,
			&t.Role,
			&t.Company,
			&t.Message,
			&t.Rating,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
