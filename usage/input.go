package usage

import "fmt"

// InvalidInteger is returned when a token could not be parsed as a
// base-10 integer.
func InvalidInteger(token string) *Error {
	return &Error{
		Kind:    BadIntegerFormat,
		Message: fmt.Sprintf("'%s' is not a valid integer", token),
	}
}

// InvalidFloat is returned when a token could not be parsed as a
// decimal number.
func InvalidFloat(token string) *Error {
	return &Error{
		Kind:    BadFloatFormat,
		Message: fmt.Sprintf("'%s' is not a valid number", token),
	}
}

// MissingInput is returned when a flag or command expected an argument
// token and none followed it.
func MissingInput(name string) *Error {
	return &Error{
		Kind:    MissingArgument,
		Message: fmt.Sprintf("'%s' requires an argument", name),
	}
}
