// Package validation guards the inputs that flow into filesystem paths.
package validation

import (
	"errors"
	"os"
	"strings"
	"unicode"
)

// Validation errors
var (
	ErrSessionIDEmpty   = errors.New("session ID is empty")
	ErrSessionIDTooLong = errors.New("session ID too long")
	ErrSessionIDInvalid = errors.New("session ID contains invalid characters")
)

// MaxSessionIDLength is the maximum allowed session ID length.
const MaxSessionIDLength = 128

// ValidateSessionID checks that a host-supplied session ID is safe to use
// as a filename component: non-empty, bounded, no null bytes, no path
// characters, only alphanumerics plus dash and underscore.
func ValidateSessionID(id string) error {
	if id == "" {
		return ErrSessionIDEmpty
	}

	if len(id) > MaxSessionIDLength {
		return ErrSessionIDTooLong
	}

	if strings.ContainsRune(id, 0) {
		return ErrSessionIDInvalid
	}

	if strings.ContainsAny(id, "/\\.") {
		return ErrSessionIDInvalid
	}

	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return ErrSessionIDInvalid
		}
	}

	return nil
}

// GetWorkDir returns the working directory for state files when the
// request did not carry a cwd: the CLAUDE_WORKING_DIRECTORY override if
// set, otherwise the process working directory.
func GetWorkDir() string {
	if dir := os.Getenv("CLAUDE_WORKING_DIRECTORY"); dir != "" {
		return dir
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return ""
}
