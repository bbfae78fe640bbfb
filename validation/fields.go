// Package validation holds the pure field rules shared by the form client
// and the intake endpoints. Each rule returns an empty string for a valid
// value or a human-readable error message.
package validation

import (
	"regexp"
	"strings"
)

// FieldKind identifies which rule applies to a form field.
type FieldKind string

const (
	FieldName    FieldKind = "name"
	FieldEmail   FieldKind = "email"
	FieldPhone   FieldKind = "phone"
	FieldMessage FieldKind = "message"
)

var (
	// emailPattern requires a local part, an @, and a dot in the domain,
	// with no whitespace anywhere.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phonePattern accepts at least 10 characters drawn from digits,
	// spaces, and the separators + ( ) -.
	phonePattern = regexp.MustCompile(`^[\d\s+()-]{10,}$`)
)

// ValidateField applies the rule for kind to value. It returns an empty
// string when the value is valid. Unknown kinds are treated as valid so
// optional fields (interest selection) pass through untouched.
func ValidateField(kind FieldKind, value string) string {
	switch kind {
	case FieldName:
		return validateName(value)
	case FieldEmail:
		return validateEmail(value)
	case FieldPhone:
		return validatePhone(value)
	case FieldMessage:
		return validateMessage(value)
	}
	return ""
}

// IsValidEmail reports whether value matches the email shape rule. The
// catalogue intake endpoint reuses it for its server-side check.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

func validateName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Please enter your name"
	}
	if len(strings.TrimSpace(value)) < 2 {
		return "Name must be at least 2 characters"
	}
	return ""
}

func validateEmail(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Please enter your email address"
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

func validatePhone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Please enter your phone number"
	}
	if !phonePattern.MatchString(value) {
		return "Please enter a valid phone number"
	}
	return ""
}

func validateMessage(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Please enter a message"
	}
	if len(strings.TrimSpace(value)) < 10 {
		return "Message must be at least 10 characters"
	}
	return ""
}
