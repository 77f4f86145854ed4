// Package notification subscribes to domain events and sends email in
// response. Domain modules publish events and stay unaware of email
// providers and templates; the dependency points this way instead.
package notification

import (
	"context"
	"fmt"

	"salonhub_backend/internal/email"
	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/config"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"

	"github.com/google/uuid"
)

// Recipient is the provider shape the notification module needs for
// addressing email.
type Recipient struct {
	Email       string
	FullName    string
	CompanyName string
	Slug        string
}

// ProviderDirectory resolves a provider id to an email recipient.
// Implemented by an adapter over the providers module.
type ProviderDirectory interface {
	GetRecipient(ctx context.Context, providerID uuid.UUID) (Recipient, error)
}

// Module wires domain events to email delivery.
type Module struct {
	sender    email.Sender
	directory ProviderDirectory
	cfg       config.NotificationConfig
	log       *logger.Logger
}

// NewModule creates the notification module.
func NewModule(sender email.Sender, directory ProviderDirectory, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, directory: directory, cfg: cfg, log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notification"
}

// RegisterHandlers subscribes the module's handlers on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(domainevents.ProviderRegisteredName, m.handleProviderRegistered)
	bus.Subscribe(domainevents.RequestSubmittedName, m.handleRequestSubmitted)
}

func (m *Module) handleProviderRegistered(ctx context.Context, event events.Event) error {
	evt, ok := event.(domainevents.ProviderRegistered)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	recipient, err := m.directory.GetRecipient(ctx, evt.ProviderID)
	if err != nil {
		return err
	}

	catalogURL := fmt.Sprintf("%s/catalog/%s", m.cfg.GetAppBaseURL(), recipient.Slug)
	if err := m.sender.SendWelcomeEmail(ctx, recipient.Email, recipient.FullName, catalogURL); err != nil {
		m.log.Error("welcome email failed", "provider_id", evt.ProviderID.String(), "error", err)
		return err
	}

	return nil
}

func (m *Module) handleRequestSubmitted(ctx context.Context, event events.Event) error {
	evt, ok := event.(domainevents.RequestSubmitted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	recipient, err := m.directory.GetRecipient(ctx, evt.ProviderID)
	if err != nil {
		// Intake trusts provider ids verbatim; a request for a provider that
		// does not exist simply has nobody to notify.
		if apperr.Is(err, apperr.KindNotFound) {
			m.log.Warn("request submitted for unknown provider, no alert sent",
				"provider_id", evt.ProviderID.String(), "request_id", evt.RequestID.String())
			return nil
		}
		return err
	}

	data := email.NewRequestData{
		ProviderName:  recipient.FullName,
		CustomerName:  evt.CustomerName,
		CustomerPhone: evt.CustomerPhone,
		CustomerNote:  evt.CustomerNote,
		ServiceCount:  len(evt.ServiceIDs),
	}
	if err := m.sender.SendNewRequestEmail(ctx, recipient.Email, data); err != nil {
		m.log.Error("new request email failed", "provider_id", evt.ProviderID.String(), "error", err)
		return err
	}

	return nil
}
