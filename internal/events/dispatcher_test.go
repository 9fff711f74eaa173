package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var first, second []Event

	d.Subscribe(EventTestimonialSubmitted, func(_ context.Context, e Event) error {
		first = append(first, e)
		return nil
	})
	d.Subscribe(EventTestimonialSubmitted, func(_ context.Context, e Event) error {
		second = append(second, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "e-1",
		Type:      EventTestimonialSubmitted,
		SubjectID: "t-1",
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected both handlers invoked once, got %d and %d", len(first), len(second))
	}
	if first[0].SubjectID != "t-1" {
		t.Fatalf("expected subject t-1, got %q", first[0].SubjectID)
	}
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	invoked := 0

	d.Subscribe(EventTestimonialDeleted, func(_ context.Context, _ Event) error {
		invoked++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTestimonialSubmitted}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if invoked != 0 {
		t.Fatalf("handler for a different type must not run, got %d calls", invoked)
	}
}

func TestHandlerErrorDoesNotBlockOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	invoked := false

	d.Subscribe(EventTestimonialStatusChanged, func(_ context.Context, _ Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventTestimonialStatusChanged, func(_ context.Context, _ Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTestimonialStatusChanged}); err != nil {
		t.Fatalf("publish must swallow handler errors, got %v", err)
	}
	if !invoked {
		t.Fatal("a failing handler must not block later handlers")
	}
}
