package types

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ValidationError reports a field value that violates an entity invariant.
// Validation never blocks an optimistic mutation; it only gates finalize.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Msg)
}

// ValidateIDPresent rejects empty identifiers before they reach the wire.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: field, Msg: "must not be empty"}
	}
	return nil
}

// ValidateMessageText enforces the hard message length limit. Length is
// counted in runes so multi-byte text is not unfairly truncated.
func ValidateMessageText(msg string) error {
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return &ValidationError{
			Field: "messageText",
			Msg:   fmt.Sprintf("must be at most %d characters", MaxMessageLength),
		}
	}
	return nil
}

// ValidateContact checks the buyer contact info required at finalize time.
func ValidateContact(c Contact) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "contactName", Msg: "must not be empty"}
	}
	if strings.TrimSpace(c.Email) == "" {
		return &ValidationError{Field: "contactEmail", Msg: "must not be empty"}
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return &ValidationError{Field: "contactEmail", Msg: "must be a valid email address"}
	}
	return nil
}
