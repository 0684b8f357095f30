package handlers

import "strings"

// Validation limits.
const (
	MaxEmailLength    = 254
	MaxPasswordLength = 128
	MaxRefreshToken   = 1024
)

// SanitizeEmail trims whitespace; returns empty if over max length. The
// address is not lowercased: party emails are matched case-sensitively.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(email)
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizeAccountEmail trims and lowercases an account email; returns
// empty if over max length.
func SanitizeAccountEmail(email string) string {
	return strings.ToLower(SanitizeEmail(email))
}

// SanitizePassword trims password; returns empty if over max length.
func SanitizePassword(password string) string {
	s := strings.TrimSpace(password)
	if len(s) > MaxPasswordLength {
		return ""
	}
	return s
}
