package errors

import (
	"net"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest employee name accepted, in characters.
const MaxNameLength = 256

// Formats lists the chart output formats understood by the tools.
var Formats = []string{"text", "json", "yaml", "dot", "svg"}

// ValidateName validates an employee name read from a chart file.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters (names end up in DOT labels and terminal output)
//   - Maximum length of MaxNameLength characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidChart, "employee name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return New(ErrCodeInvalidChart, "employee name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "employee name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateAddr validates a listen address of the form host:port.
// The host may be empty to listen on all interfaces.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid listen address %q", addr)
	}
	if port == "" {
		return New(ErrCodeInvalidInput, "listen address %q has no port", addr)
	}
	return nil
}
