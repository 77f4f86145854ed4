// Package email delivers transactional email for the application.
package email

import "context"

// NewRequestData carries the fields rendered into the new-request alert.
type NewRequestData struct {
	ProviderName  string
	CustomerName  string
	CustomerPhone string
	CustomerNote  string
	ServiceCount  int
}

// Sender delivers transactional emails. Implementations render the shared
// HTML templates and differ only in transport.
type Sender interface {
	// SendWelcomeEmail greets a freshly registered provider and links to
	// their public catalog page.
	SendWelcomeEmail(ctx context.Context, toEmail, providerName, catalogURL string) error
	// SendNewRequestEmail alerts a provider that a customer submitted a
	// service request.
	SendNewRequestEmail(ctx context.Context, toEmail string, data NewRequestData) error
}
