package service

import (
	"context"
	"net/http"
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
	nameMinLen    = 2
	nameMaxLen    = 100
	emailMaxLen   = 255
	roleMaxLen    = 100
	companyMaxLen = 100
	messageMinLen = 10
	messageMaxLen = 1000
	ratingMin     = 1
	ratingMax     = 5
)

// TestimonialInput describes a candidate submission. Status is deliberately
// absent; submitters can never pick their own moderation state.
type TestimonialInput struct {
	Name    string
	Email   string
	Role    string
	Company string
	Message string
	Rating  int
}

// ModerationOverview bundles the full list with per-status totals for the
// admin console.
type ModerationOverview struct {
	Testimonials []domain.Testimonial
	Pending      int
	Approved     int
	Rejected     int
}

// TestimonialService coordinates the submission and moderation workflow.
type TestimonialService struct {
	testimonials repository.TestimonialRepository
	dispatcher   events.Dispatcher
}

// TestimonialDependencies bundles requirements for the service.
type TestimonialDependencies struct {
	TestimonialRepo repository.TestimonialRepository
	Dispatcher      events.Dispatcher
}

// NewTestimonialService constructs the service.
func NewTestimonialService(deps TestimonialDependencies) *TestimonialService {
	return &TestimonialService{
		testimonials: deps.TestimonialRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Submit validates a candidate testimonial and creates it in the pending
// state. Validation reports the first violated field and persists nothing.
// Repeated identical submissions create separate records; there is no dedup
// and no automatic retry.
func (s *TestimonialService) Submit(ctx context.Context, input TestimonialInput) (*domain.Testimonial, error) {
	testimonial, err := validateSubmission(input)
	if err != nil {
		return nil, err
	}

	testimonial.Status = domain.TestimonialStatusPending
	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, apperrors.NewSubmissionError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTestimonialSubmitted,
		SubjectID: testimonial.ID,
		Payload: events.TestimonialSubmittedPayload{
			Name:   testimonial.Name,
			Rating: testimonial.Rating,
		},
	})
	return testimonial, nil
}

// ListApproved returns the public feed: approved records only, newest first.
// No approved records is an empty feed, not an error.
func (s *TestimonialService) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	items, err := s.testimonials.List(ctx, repository.TestimonialFilter{
		Statuses: []domain.TestimonialStatus{domain.TestimonialStatusApproved},
	})
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}
	if items == nil {
		items = []domain.Testimonial{}
	}
	return items, nil
}

// ListForModeration returns every record regardless of status, newest first,
// along with per-status counts.
func (s *TestimonialService) ListForModeration(ctx context.Context) (*ModerationOverview, error) {
	items, err := s.testimonials.List(ctx, repository.TestimonialFilter{})
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}
	if items == nil {
		items = []domain.Testimonial{}
	}
	counts, err := s.testimonials.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}
	return &ModerationOverview{
		Testimonials: items,
		Pending:      counts[domain.TestimonialStatusPending],
		Approved:     counts[domain.TestimonialStatusApproved],
		Rejected:     counts[domain.TestimonialStatusRejected],
	}, nil
}

// Approve moves the record to approved. Approving an already-approved record
// re-issues the same update and succeeds as a no-op.
func (s *TestimonialService) Approve(ctx context.Context, actorID, id string) (*domain.Testimonial, error) {
	return s.transition(ctx, actorID, id, domain.TestimonialStatusApproved)
}

// Reject moves the record to rejected under the same idempotency rule.
func (s *TestimonialService) Reject(ctx context.Context, actorID, id string) (*domain.Testimonial, error) {
	return s.transition(ctx, actorID, id, domain.TestimonialStatusRejected)
}

func (s *TestimonialService) transition(ctx context.Context, actorID, id string, target domain.TestimonialStatus) (*domain.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewMutationError(err)
	}
	oldStatus := testimonial.Status
	if err := s.testimonials.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperrors.NewMutationError(err)
	}
	testimonial.Status = target

	s.publish(ctx, events.Event{
		Type:      events.EventTestimonialStatusChanged,
		SubjectID: testimonial.ID,
		ActorID:   &actorID,
		Payload: events.TestimonialStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: target,
		},
	})
	return testimonial, nil
}

// Delete permanently removes the record. The confirmed flag must come from an
// explicit operator action distinct from the triggering click; without it the
// store is never touched. A missing record fails with not-found, which covers
// two moderators racing to delete the same row.
func (s *TestimonialService) Delete(ctx context.Context, actorID, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.NewDomainError("CONFIRMATION_REQUIRED",
			"delete requires explicit confirmation", http.StatusBadRequest, nil)
	}
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewMutationError(err)
	}
	if err := s.testimonials.Delete(ctx, id); err != nil {
		return apperrors.NewMutationError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTestimonialDeleted,
		SubjectID: id,
		ActorID:   &actorID,
		Payload: events.TestimonialDeletedPayload{
			Status: testimonial.Status,
		},
	})
	return nil
}

func (s *TestimonialService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// validateSubmission trims all text fields, then checks them in declaration
// order so the first violated field is the one reported.
func validateSubmission(input TestimonialInput) (*domain.Testimonial, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	role := strings.TrimSpace(input.Role)
	company := strings.TrimSpace(input.Company)
	message := strings.TrimSpace(input.Message)

	// Bounds are character counts, not bytes, so multibyte names measure the
	// same as ASCII ones.
	if utf8.RuneCountInString(name) < nameMinLen {
		return nil, apperrors.NewValidationError("name", "name must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) > nameMaxLen {
		return nil, apperrors.NewValidationError("name", "name must be less than 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("email", "invalid email address")
	}
	if len(email) > emailMaxLen {
		return nil, apperrors.NewValidationError("email", "email must be less than 255 characters")
	}
	if utf8.RuneCountInString(role) > roleMaxLen {
		return nil, apperrors.NewValidationError("role", "role must be less than 100 characters")
	}
	if utf8.RuneCountInString(company) > companyMaxLen {
		return nil, apperrors.NewValidationError("company", "company must be less than 100 characters")
	}
	if utf8.RuneCountInString(message) < messageMinLen {
		return nil, apperrors.NewValidationError("message", "message must be at least 10 characters")
	}
	if utf8.RuneCountInString(message) > messageMaxLen {
		return nil, apperrors.NewValidationError("message", "message must be less than 1000 characters")
	}
	if input.Rating < ratingMin || input.Rating > ratingMax {
		return nil, apperrors.NewValidationError("rating", "rating must be between 1 and 5")
	}

	testimonial := &domain.Testimonial{
		Name:    name,
		Email:   email,
		Message: message,
		Rating:  input.Rating,
	}
	if role != "" {
		testimonial.Role = &role
	}
	if company != "" {
		testimonial.Company = &company
	}
	return testimonial, nil
}
