package service

import "strings"

// DeriveSlug normalizes a company name into a URL-safe slug:
// lowercase, quotes stripped, runs of non-alphanumeric characters collapsed
// to a single hyphen, leading and trailing hyphens trimmed.
// Uniqueness is enforced by the storage layer, not here.
func DeriveSlug(companyName string) string {
	lowered := strings.ToLower(strings.TrimSpace(companyName))
	lowered = strings.ReplaceAll(lowered, "'", "")
	lowered = strings.ReplaceAll(lowered, "\"", "")

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
