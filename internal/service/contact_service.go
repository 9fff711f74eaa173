package service

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/events"
	"github.com/Naveen122004/portfolio-service/internal/repository"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

const (
	contactSubjectMaxLen = 200
	contactBodyMaxLen    = 2000
)

// ContactInput describes a contact form message.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ContactService stores contact messages and notifies listeners.
type ContactService struct {
	messages   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService constructs the service.
func NewContactService(messages repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{messages: messages, dispatcher: dispatcher}
}

// Send validates and stores a contact message, reporting the first violated
// field on failure.
func (s *ContactService) Send(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)

	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("email", "invalid email address")
	}
	if utf8.RuneCountInString(subject) > contactSubjectMaxLen {
		return nil, apperrors.NewValidationError("subject", "subject must be less than 200 characters")
	}
	if body == "" {
		return nil, apperrors.NewValidationError("body", "message body is required")
	}
	if utf8.RuneCountInString(body) > contactBodyMaxLen {
		return nil, apperrors.NewValidationError("body", "message must be less than 2000 characters")
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Body:    body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.NewSubmissionError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactMessageReceived,
			SubjectID: msg.ID,
			Timestamp: time.Now(),
			Payload: events.ContactMessageReceivedPayload{
				Name:    msg.Name,
				Subject: msg.Subject,
			},
		})
	}
	return msg, nil
}
