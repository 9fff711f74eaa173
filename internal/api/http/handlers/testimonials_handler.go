package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/api/dto"
	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/service"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// TestimonialsHandler manages the public testimonial endpoints.
type TestimonialsHandler struct {
	service *service.TestimonialService
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(testimonialService *service.TestimonialService) *TestimonialsHandler {
	return &TestimonialsHandler{service: testimonialService}
}

// Submit POST /testimonials.
func (h *TestimonialsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "invalid payload")
	}

	testimonial, err := h.service.Submit(c.Context(), service.TestimonialInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Company: req.Company,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":     testimonial.ID,
		"status": testimonial.Status,
	}})
}

// ListApproved GET /testimonials.
func (h *TestimonialsHandler) ListApproved(c *fiber.Ctx) error {
	testimonials, err := h.service.ListApproved(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PublicTestimonial, 0, len(testimonials))
	for i := range testimonials {
		items = append(items, publicTestimonial(&testimonials[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func publicTestimonial(t *domain.Testimonial) dto.PublicTestimonial {
	return dto.PublicTestimonial{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Company:   t.Company,
		Rating:    t.Rating,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
	}
}

func testimonialDetail(t *domain.Testimonial) dto.TestimonialDetail {
	return dto.TestimonialDetail{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Role:      t.Role,
		Company:   t.Company,
		Rating:    t.Rating,
		Message:   t.Message,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
