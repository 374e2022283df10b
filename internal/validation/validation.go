// Package validation provides field-level input validators for API payloads.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// MinPasswordLength is the only password policy the platform enforces.
const MinPasswordLength = 6

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Errors collects field-keyed validation messages.
type Errors map[string][]string

// Add appends a message for the given field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether any field failed validation.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Required adds an error when value is blank.
func (e Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "This field is required")
	}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidDecimal reports whether s parses as a non-negative decimal amount.
func ValidDecimal(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f >= 0
}
