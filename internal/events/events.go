// Package events defines the domain events published by the application's
// bounded contexts. The dispatch infrastructure lives in platform/events.
package events

import (
	"salonhub_backend/platform/events"

	"github.com/google/uuid"
)

// Event names.
const (
	ProviderRegisteredName   = "provider.registered"
	RequestSubmittedName     = "request.submitted"
	RequestStatusChangedName = "request.status_changed"
)

// ProviderRegistered fires after a new provider account is created.
type ProviderRegistered struct {
	events.BaseEvent
	ProviderID  uuid.UUID
	Email       string
	FullName    string
	CompanyName string
}

func (e ProviderRegistered) EventName() string { return ProviderRegisteredName }

// NewProviderRegistered builds the event for a freshly created provider.
func NewProviderRegistered(providerID uuid.UUID, email, fullName, companyName string) ProviderRegistered {
	return ProviderRegistered{
		BaseEvent:   events.NewBaseEvent(providerID),
		ProviderID:  providerID,
		Email:       email,
		FullName:    fullName,
		CompanyName: companyName,
	}
}

// RequestSubmitted fires when a customer submits a service request
// through the public intake endpoint.
type RequestSubmitted struct {
	events.BaseEvent
	RequestID     uuid.UUID
	ProviderID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerNote  string
	ServiceIDs    []uuid.UUID
}

func (e RequestSubmitted) EventName() string { return RequestSubmittedName }

// NewRequestSubmitted builds the event for a newly captured request.
func NewRequestSubmitted(requestID, providerID uuid.UUID, customerName, customerPhone, customerNote string, serviceIDs []uuid.UUID) RequestSubmitted {
	return RequestSubmitted{
		BaseEvent:     events.NewBaseEvent(requestID),
		RequestID:     requestID,
		ProviderID:    providerID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		CustomerNote:  customerNote,
		ServiceIDs:    serviceIDs,
	}
}

// RequestStatusChanged fires when a provider moves a request to a new status.
type RequestStatusChanged struct {
	events.BaseEvent
	RequestID  uuid.UUID
	ProviderID uuid.UUID
	NewStatus  string
}

func (e RequestStatusChanged) EventName() string { return RequestStatusChangedName }

// NewRequestStatusChanged builds the event for a request status transition.
func NewRequestStatusChanged(requestID, providerID uuid.UUID, newStatus string) RequestStatusChanged {
	return RequestStatusChanged{
		BaseEvent:  events.NewBaseEvent(requestID),
		RequestID:  requestID,
		ProviderID: providerID,
		NewStatus:  newStatus,
	}
}
