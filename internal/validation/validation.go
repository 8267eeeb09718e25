// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxPostContentLength bounds post content after trimming.
	MaxPostContentLength = 1000

	minPasswordLength = 6
	maxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks if a password meets the minimum policy. The mobile
// client enforces the same six-character floor; the server re-checks it.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLength)
	}

	return nil
}

// ValidateUsername checks if a username meets requirements. Usernames are
// optional at signup; empty is allowed.
func ValidateUsername(username string) error {
	if username == "" {
		return nil
	}

	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	// Only allow alphanumeric, underscores and hyphens
	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidatePostContent trims content and checks the length bounds.
// Returns the trimmed content.
func ValidatePostContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", fmt.Errorf("content cannot be empty")
	}
	if len(trimmed) > MaxPostContentLength {
		return "", fmt.Errorf("content must not exceed %d characters", MaxPostContentLength)
	}
	return trimmed, nil
}

// ValidateGroupName trims the name and checks its bounds.
// Returns the trimmed name.
func ValidateGroupName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name is required")
	}
	if len(trimmed) > 120 {
		return "", fmt.Errorf("name must not exceed 120 characters")
	}
	return trimmed, nil
}
