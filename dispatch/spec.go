package dispatch

// ExpectedInput declares whether a flag or command consumes the token
// following its name, and how that token is coerced before the handler
// runs.
type ExpectedInput int

const (
	// InputIgnore consumes nothing; the handler receives a zero Value.
	InputIgnore ExpectedInput = iota
	// InputString consumes the next token unchanged.
	InputString
	// InputInt consumes the next token as a base-10 integer.
	InputInt
	// InputFloat consumes the next token as a decimal number.
	InputFloat
)

func (e ExpectedInput) String() string {
	switch e {
	case InputIgnore:
		return "none"
	case InputString:
		return "string"
	case InputInt:
		return "int"
	case InputFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Handler is the callable bound to a flag or command. It receives the
// coerced argument value (zero Value for InputIgnore entries) and the
// raw tokens remaining after the name and its argument were consumed.
// The same contract holds whether the entry was matched in process argv
// or typed into the interactive loop.
type Handler func(value Value, args []string) error

// Spec describes one registered flag or command. Flags and commands are
// structurally identical; a command simply has no meaningful Default
// since it only ever fires when typed.
type Spec struct {
	Name    string
	Short   string // optional one-token alias, e.g. "-c" for "--count"
	Summary string
	Usage   string // argument hint for help listing, e.g. "<file>"
	Input   ExpectedInput
	Default Value
	Handler Handler // nil falls back to the registry's default handler
}
