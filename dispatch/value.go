package dispatch

import (
	"fmt"
	"strconv"

	"github.com/console-tools/console/usage"
)

// Value holds a coerced argument. The zero Value has kind InputIgnore
// and renders as the empty string.
type Value struct {
	kind ExpectedInput
	str  string
	num  int64
	real float64
}

// StringValue wraps a raw token as a string Value.
func StringValue(s string) Value {
	return Value{kind: InputString, str: s}
}

// IntValue wraps an integer as a Value.
func IntValue(n int64) Value {
	return Value{kind: InputInt, num: n}
}

// FloatValue wraps a float as a Value.
func FloatValue(f float64) Value {
	return Value{kind: InputFloat, real: f}
}

// Kind returns the input kind this Value was coerced as.
func (v Value) Kind() ExpectedInput {
	return v.kind
}

// IsZero reports whether the Value carries no coerced argument.
func (v Value) IsZero() bool {
	return v.kind == InputIgnore
}

// Str returns the string form of a string Value, or "" for other kinds.
func (v Value) Str() string {
	return v.str
}

// Int returns the integer form of an int Value, or 0 for other kinds.
func (v Value) Int() int64 {
	return v.num
}

// Float returns the float form of a float Value, or 0 for other kinds.
func (v Value) Float() float64 {
	return v.real
}

// String renders the Value for display, used by help listing to show
// flag defaults.
func (v Value) String() string {
	switch v.kind {
	case InputString:
		return v.str
	case InputInt:
		return strconv.FormatInt(v.num, 10)
	case InputFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	default:
		return ""
	}
}

// Coerce converts a raw token into a Value of the expected kind. It is a
// pure function: no side effects, no trimming, no locale handling.
// Ignore and string kinds pass the token through unchanged.
func Coerce(raw string, expected ExpectedInput) (Value, error) {
	switch expected {
	case InputIgnore, InputString:
		return Value{kind: InputString, str: raw}, nil
	case InputInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, usage.InvalidInteger(raw)
		}
		return IntValue(n), nil
	case InputFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, usage.InvalidFloat(raw)
		}
		return FloatValue(f), nil
	default:
		return Value{}, fmt.Errorf("unknown input kind %d", expected)
	}
}
