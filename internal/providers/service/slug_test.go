package service

import "testing"

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Luxury Looks", "luxury-looks"},
		{"apostrophe stripped", "Maria's Salon", "marias-salon"},
		{"double quotes stripped", `The "Best" Cuts`, "the-best-cuts"},
		{"symbol runs collapse", "Hair  &  Beauty!!", "hair-beauty"},
		{"edge hyphens trimmed", "--Spa Time--", "spa-time"},
		{"digits kept", "Studio 54", "studio-54"},
		{"already clean", "glow", "glow"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveSlug(tc.input); got != tc.want {
				t.Fatalf("DeriveSlug(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
