package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/api/dto"
	"github.com/Naveen122004/portfolio-service/internal/service"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// ContactHandler accepts contact form messages.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Send POST /contact.
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "invalid payload")
	}

	msg, err := h.service.Send(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": msg.ID}})
}
