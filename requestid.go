package declines

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	requestIDMinLength = 16
	requestIDMaxLength = 128
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewRequestID generates a unique request identifier with the given prefix.
// If prefix is empty, "dcl_" is used.
//
// The generated ID format is: prefix + UUID v4 without hyphens (32 hex chars)
// Example: "dcl_7d5d747be160e280504c099d984bcfe0"
func NewRequestID(prefix string) string {
	if prefix == "" {
		prefix = "dcl_"
	}
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// IsValidRequestID validates that a request ID meets the format
// requirements: 16 to 128 characters of alphanumerics, hyphens, and
// underscores.
func IsValidRequestID(id string) bool {
	if len(id) < requestIDMinLength || len(id) > requestIDMaxLength {
		return false
	}
	return requestIDPattern.MatchString(id)
}
