package notification

import (
	"context"
	"testing"

	"salonhub_backend/internal/email"
	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"

	"github.com/google/uuid"
)

type sentWelcome struct {
	to         string
	name       string
	catalogURL string
}

type fakeSender struct {
	welcomes []sentWelcome
	requests []email.NewRequestData
	to       []string
}

func (s *fakeSender) SendWelcomeEmail(_ context.Context, toEmail, providerName, catalogURL string) error {
	s.welcomes = append(s.welcomes, sentWelcome{to: toEmail, name: providerName, catalogURL: catalogURL})
	return nil
}

func (s *fakeSender) SendNewRequestEmail(_ context.Context, toEmail string, data email.NewRequestData) error {
	s.requests = append(s.requests, data)
	s.to = append(s.to, toEmail)
	return nil
}

type fakeDirectory struct {
	recipients map[uuid.UUID]Recipient
}

func (d *fakeDirectory) GetRecipient(_ context.Context, providerID uuid.UUID) (Recipient, error) {
	r, ok := d.recipients[providerID]
	if !ok {
		return Recipient{}, apperr.NotFound("Provider not found")
	}
	return r, nil
}

type testNotificationConfig struct{}

func (testNotificationConfig) GetAppBaseURL() string { return "https://app.salonhub.test" }

func newTestModule(t *testing.T) (*fakeSender, *fakeDirectory, events.Bus) {
	t.Helper()
	sender := &fakeSender{}
	directory := &fakeDirectory{recipients: map[uuid.UUID]Recipient{}}
	log := logger.New("test")
	mod := NewModule(sender, directory, testNotificationConfig{}, log)
	bus := events.NewInMemoryBus(log)
	mod.RegisterHandlers(bus)
	return sender, directory, bus
}

func TestWelcomeEmailOnRegistration(t *testing.T) {
	sender, directory, bus := newTestModule(t)

	providerID := uuid.New()
	directory.recipients[providerID] = Recipient{
		Email:       "anna@glowstudio.example",
		FullName:    "Anna Kowalska",
		CompanyName: "Glow Studio",
		Slug:        "glow-studio",
	}

	evt := domainevents.NewProviderRegistered(providerID, "anna@glowstudio.example", "Anna Kowalska", "Glow Studio")
	if err := bus.PublishSync(context.Background(), evt); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.welcomes) != 1 {
		t.Fatalf("expected 1 welcome email, got %d", len(sender.welcomes))
	}
	got := sender.welcomes[0]
	if got.to != "anna@glowstudio.example" {
		t.Errorf("to = %q", got.to)
	}
	if got.name != "Anna Kowalska" {
		t.Errorf("name = %q", got.name)
	}
	if got.catalogURL != "https://app.salonhub.test/catalog/glow-studio" {
		t.Errorf("catalog URL = %q", got.catalogURL)
	}
}

func TestNewRequestEmail(t *testing.T) {
	sender, directory, bus := newTestModule(t)

	providerID := uuid.New()
	directory.recipients[providerID] = Recipient{
		Email:    "anna@glowstudio.example",
		FullName: "Anna Kowalska",
		Slug:     "glow-studio",
	}

	serviceIDs := []uuid.UUID{uuid.New(), uuid.New()}
	evt := domainevents.NewRequestSubmitted(uuid.New(), providerID, "Maria", "+12125550100", "evening please", serviceIDs)
	if err := bus.PublishSync(context.Background(), evt); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.requests) != 1 {
		t.Fatalf("expected 1 request email, got %d", len(sender.requests))
	}
	data := sender.requests[0]
	if data.CustomerName != "Maria" || data.CustomerPhone != "+12125550100" {
		t.Errorf("customer = %q / %q", data.CustomerName, data.CustomerPhone)
	}
	if data.CustomerNote != "evening please" {
		t.Errorf("note = %q", data.CustomerNote)
	}
	if data.ServiceCount != 2 {
		t.Errorf("service count = %d", data.ServiceCount)
	}
	if sender.to[0] != "anna@glowstudio.example" {
		t.Errorf("to = %q", sender.to[0])
	}
}

// Intake stores provider ids without checking them, so a request can name a
// provider that does not exist. The handler must swallow that quietly.
func TestNewRequestForUnknownProviderIsIgnored(t *testing.T) {
	sender, _, bus := newTestModule(t)

	evt := domainevents.NewRequestSubmitted(uuid.New(), uuid.New(), "Maria", "+12125550100", "", nil)
	if err := bus.PublishSync(context.Background(), evt); err != nil {
		t.Fatalf("expected handler to ignore unknown provider, got %v", err)
	}
	if len(sender.requests) != 0 {
		t.Fatalf("expected no email, got %d", len(sender.requests))
	}
}
