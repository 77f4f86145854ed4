package email

import (
	"context"

	"salonhub_backend/platform/logger"
)

// NoopSender is used when SMTP is not configured. It logs instead of sending
// so local development works without a mail server.
type NoopSender struct {
	log *logger.Logger
}

func NewNoopSender(log *logger.Logger) *NoopSender {
	return &NoopSender{log: log}
}

var _ Sender = (*NoopSender)(nil)

func (s *NoopSender) SendWelcomeEmail(_ context.Context, toEmail, providerName, _ string) error {
	s.log.Info("email disabled, skipping welcome email", "to", toEmail, "provider", providerName)
	return nil
}

func (s *NoopSender) SendNewRequestEmail(_ context.Context, toEmail string, data NewRequestData) error {
	s.log.Info("email disabled, skipping new request email", "to", toEmail, "customer", data.CustomerName)
	return nil
}
