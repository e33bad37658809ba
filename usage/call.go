package usage

import (
	"fmt"
	"strings"
)

// NotACommand is returned when a typed token does not resolve to any
// registered command. Suggestions, when present, are appended to the
// message as "did you mean" candidates.
func NotACommand(name string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a known command. Type 'help' for a list.", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:        UnknownCommand,
		Message:     msg,
		Suggestions: suggestions,
	}
}

// Duplicate is returned when a name (or short alias) is registered twice
// within the same registry.
func Duplicate(name string) *Error {
	return &Error{
		Kind:    DuplicateName,
		Message: fmt.Sprintf("'%s' is already registered", name),
	}
}

// Empty is returned when registration is attempted with an empty name.
func Empty() *Error {
	return &Error{
		Kind:    EmptyName,
		Message: "cannot register an empty name",
	}
}
