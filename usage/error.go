package usage

// Kind represents the type of usage error.
type Kind int

const (
	Unknown Kind = iota

	// Input errors: a flag or command expected typed input and the
	// supplied token was malformed or missing.
	BadIntegerFormat
	BadFloatFormat
	MissingArgument

	// Call errors: the invocation itself could not be resolved.
	UnknownCommand
	DuplicateName
	EmptyName
)

// Exit codes:
//
//	Exit 1: Resolution errors
//	  - Unknown errors
//	  - Unknown command
//	  - Duplicate or empty registration
//
//	Exit 2: User input errors
//	  - Malformed integer/float token
//	  - Missing argument
var exitCodes = map[Kind]int{
	Unknown:          1,
	BadIntegerFormat: 2,
	BadFloatFormat:   2,
	MissingArgument:  2,
	UnknownCommand:   1,
	DuplicateName:    1,
	EmptyName:        1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    Kind
	Message string

	// Suggestions holds "did you mean" candidates for unknown commands.
	Suggestions []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the appropriate process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsInput reports whether the error concerns a malformed or missing
// argument token rather than an unresolvable invocation.
func (e *Error) IsInput() bool {
	switch e.Kind {
	case BadIntegerFormat, BadFloatFormat, MissingArgument:
		return true
	}
	return false
}

// IsCall reports whether the error concerns name resolution or
// registration rather than argument input.
func (e *Error) IsCall() bool {
	switch e.Kind {
	case UnknownCommand, DuplicateName, EmptyName:
		return true
	}
	return false
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
