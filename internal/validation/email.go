package validation

import (
	"net/mail"
)

// Error is a structured input-validation failure with a client-safe message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateEmail validates email format and length
// Uses Go's built-in net/mail parser which follows RFC 5322
func ValidateEmail(email string) error {
	// Check length (RFC 5321: local part max 64, domain max 255, total max 254 with @)
	if len(email) > 254 {
		return &Error{Message: "email address is too long (max 254 characters)"}
	}

	if email == "" {
		return &Error{Message: "email address is required"}
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return &Error{Message: "invalid email address format"}
	}

	return nil
}
