package dto

import (
	"time"

	"github.com/Naveen122004/portfolio-service/internal/domain"
)

// SubmitTestimonialRequest payload. No status field; submissions always
// enter moderation as pending.
type SubmitTestimonialRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// PublicTestimonial is the approved-feed shape. Email and status are kept
// off the public wire.
type PublicTestimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	Company   *string   `json:"company"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TestimonialDetail is the moderation view of a record.
type TestimonialDetail struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Role      *string                  `json:"role"`
	Company   *string                  `json:"company"`
	Rating    int                      `json:"rating"`
	Message   string                   `json:"message"`
	Status    domain.TestimonialStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

// ModerationStats carries per-status totals.
type ModerationStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ModerationListResponse is the admin console listing.
type ModerationListResponse struct {
	Testimonials []TestimonialDetail `json:"testimonials"`
	Stats        ModerationStats     `json:"stats"`
}
