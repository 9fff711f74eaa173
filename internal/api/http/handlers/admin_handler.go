package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/api/dto"
	"github.com/Naveen122004/portfolio-service/internal/auth"
	"github.com/Naveen122004/portfolio-service/internal/service"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// AdminHandler exposes the moderation console. Every route behind it runs the
// admin role check first.
type AdminHandler struct {
	service *service.TestimonialService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(testimonialService *service.TestimonialService) *AdminHandler {
	return &AdminHandler{service: testimonialService}
}

// List GET /admin/testimonials.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	overview, err := h.service.ListForModeration(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TestimonialDetail, 0, len(overview.Testimonials))
	for i := range overview.Testimonials {
		items = append(items, testimonialDetail(&overview.Testimonials[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ModerationListResponse{
		Testimonials: items,
		Stats: dto.ModerationStats{
			Pending:  overview.Pending,
			Approved: overview.Approved,
			Rejected: overview.Rejected,
		},
	}})
}

// Approve POST /admin/testimonials/:id/approve.
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("sign in required")
	}
	testimonial, err := h.service.Approve(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialDetail(testimonial)})
}

// Reject POST /admin/testimonials/:id/reject.
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("sign in required")
	}
	testimonial, err := h.service.Reject(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialDetail(testimonial)})
}

// Delete DELETE /admin/testimonials/:id?confirm=true. The confirm flag is the
// operator's explicit confirming action; without it nothing is deleted.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("sign in required")
	}
	confirmed := c.QueryBool("confirm")
	if err := h.service.Delete(c.Context(), principal.User.ID, c.Params("id"), confirmed); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
