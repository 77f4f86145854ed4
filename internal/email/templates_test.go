package email

import (
	"strings"
	"testing"
)

func TestRenderWelcomeTemplate(t *testing.T) {
	content, err := renderEmailTemplate("welcome.html", welcomeEmailData{
		baseEmailData: baseEmailData{
			Title:    "Welcome to SalonHub",
			Heading:  "Welcome to SalonHub",
			CTALabel: "View your public catalog",
			CTAURL:   "https://app.salonhub.test/catalog/glow-studio",
		},
		ProviderName: "Anna Kowalska",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Anna Kowalska", "https://app.salonhub.test/catalog/glow-studio", "View your public catalog"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered welcome email missing %q", want)
		}
	}
}

func TestRenderNewRequestTemplate(t *testing.T) {
	content, err := renderEmailTemplate("new_request.html", newRequestEmailData{
		baseEmailData: baseEmailData{
			Title:   "New service request",
			Heading: "New service request",
		},
		ProviderName:  "Anna Kowalska",
		CustomerName:  "Maria",
		CustomerPhone: "+12125550100",
		CustomerNote:  "evening please",
		ServiceCount:  2,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Maria", "+12125550100", "evening please", "2 selected"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered request email missing %q", want)
		}
	}
}

func TestRenderNewRequestTemplateOmitsEmptyNote(t *testing.T) {
	content, err := renderEmailTemplate("new_request.html", newRequestEmailData{
		baseEmailData: baseEmailData{Title: "New service request", Heading: "New service request"},
		ProviderName:  "Anna Kowalska",
		CustomerName:  "Maria",
		CustomerPhone: "+12125550100",
		ServiceCount:  1,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(content, "Note") {
		t.Errorf("rendered request email should omit the note row when empty")
	}
}
