package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Naveen122004/portfolio-service/internal/config"
	"github.com/Naveen122004/portfolio-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTestimonialSubmitted, n.handleTestimonialSubmitted)
	n.dispatcher.Subscribe(events.EventTestimonialStatusChanged, n.handleTestimonialStatusChanged)
	n.dispatcher.Subscribe(events.EventTestimonialDeleted, n.handleTestimonialDeleted)
	n.dispatcher.Subscribe(events.EventContactMessageReceived, n.handleContactMessageReceived)
}

func (n *NotificationService) handleTestimonialSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("TestimonialSubmitted", zap.String("testimonial_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTestimonialStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("TestimonialStatusChanged", zap.String("testimonial_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTestimonialDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("TestimonialDeleted", zap.String("testimonial_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleContactMessageReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactMessageReceived", zap.String("message_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
