package validation

import (
	"strings"
)

// ValidateUsername enforces the bounds of the users.username column.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if username == "" {
		return &Error{Message: "username is required"}
	}

	if len(username) > 50 {
		return &Error{Message: "username is too long (max 50 characters)"}
	}

	return nil
}
