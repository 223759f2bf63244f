package storage

import (
	"errors"
	"strings"
	"unicode"
)

// Agent validation errors.
var (
	ErrNameEmpty   = errors.New("agent name is required")
	ErrNameTooLong = errors.New("agent name must be at most 50 characters")
	ErrNameInvalid = errors.New("agent name can only contain letters, numbers, spaces, hyphens, and underscores")
	ErrCodeEmpty   = errors.New("agent code is required")
)

// ValidateAgentName checks the naming rules for stored agents.
func ValidateAgentName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameEmpty
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' && r != '_' {
			return ErrNameInvalid
		}
	}
	return nil
}

// ValidateAgentCode checks that the code is non-empty. Syntax validation
// belongs to the script package, which owns the interpreter.
func ValidateAgentCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrCodeEmpty
	}
	return nil
}
