package format

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizeEmail lowercases and trims an address so variants of the same
// email compare equal. Values that are not email-shaped come back trimmed
// but otherwise untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if strings.Count(email, "@") != 1 {
		return email
	}
	return strings.ToLower(email)
}

// MaskEmail hides the local part except its first character, keeping the
// domain visible so the owner can still recognize the address.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}

// NormalizePhone strips everything but digits for consistent storage and
// comparison.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
