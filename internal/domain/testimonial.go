package domain

import "time"

// TestimonialStatus enumerates moderation states for testimonials.
type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
	TestimonialStatusRejected TestimonialStatus = "rejected"
)

// Valid reports whether the status is one of the known moderation states.
func (s TestimonialStatus) Valid() bool {
	switch s {
	case TestimonialStatusPending, TestimonialStatusApproved, TestimonialStatusRejected:
		return true
	}
	return false
}

// Testimonial is a visitor-submitted review. It enters the store as pending
// and only moderation may move it between states or remove it.
type Testimonial struct {
	ID        string
	Name      string
	Email     string
	Role      *string
	Company   *string
	Message   string
	Rating    int
	Status    TestimonialStatus
	CreatedAt time.Time
}
