package events

import (
	"time"

	"github.com/Naveen122004/portfolio-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTestimonialSubmitted     EventType = "testimonial_submitted"
	EventTestimonialStatusChanged EventType = "testimonial_status_changed"
	EventTestimonialDeleted       EventType = "testimonial_deleted"
	EventContactMessageReceived   EventType = "contact_message_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   *string     `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TestimonialSubmittedPayload payload.
type TestimonialSubmittedPayload struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// TestimonialStatusChangedPayload payload.
type TestimonialStatusChangedPayload struct {
	OldStatus domain.TestimonialStatus `json:"old_status"`
	NewStatus domain.TestimonialStatus `json:"new_status"`
}

// TestimonialDeletedPayload payload.
type TestimonialDeletedPayload struct {
	Status domain.TestimonialStatus `json:"status"`
}

// ContactMessageReceivedPayload payload.
type ContactMessageReceivedPayload struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}
