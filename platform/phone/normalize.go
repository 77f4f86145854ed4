// Package phone normalizes phone numbers to E.164 format.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a number carries no international prefix.
const DefaultRegion = "US"

// Normalize parses a raw phone number and returns it in E.164 format.
// Numbers without an international prefix are interpreted in DefaultRegion.
// An empty input returns an empty string with no error.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	parsed, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil {
		return "", err
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether the raw input parses to a valid number.
func IsValid(raw string) bool {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(raw), DefaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
