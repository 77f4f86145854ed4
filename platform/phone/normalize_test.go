package phone

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"national number", "(212) 555-0175", "+12125550175"},
		{"already e164", "+12125550175", "+12125550175"},
		{"international prefix", "+31612345678", "+31612345678"},
		{"whitespace trimmed", "  212-555-0175  ", "+12125550175"},
		{"empty passes through", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	if _, err := Normalize("not a phone"); err == nil {
		t.Fatal("expected error for unparseable input")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("+12125550175") {
		t.Fatal("expected valid number")
	}
	if IsValid("123") {
		t.Fatal("expected invalid number")
	}
}
