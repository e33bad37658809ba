package dispatch

import "github.com/console-tools/console/usage"

const defaultSuggestionsCount = 3

// Dispatch resolves the first token of a typed line against the command
// registry and invokes the matched handler. An unknown leading token
// fails with an unknown-command error carrying "did you mean"
// suggestions. An empty token slice is a no-op.
func Dispatch(r *Registry, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	spec := r.Lookup(tokens[0])
	if spec == nil {
		suggestions := Suggest(r, tokens[0], defaultSuggestionsCount)
		return usage.NotACommand(tokens[0], suggestions...)
	}
	_, err := invoke(r, spec, tokens[0], tokens[1:])
	return err
}

// ParseArgs walks process argv left to right, firing the handler of
// every token that matches a registered flag. Tokens that match nothing
// are skipped silently: an absent flag simply never fires, and its
// default stays queryable through the registry. The first coercion or
// missing-argument error aborts the walk; nothing is partially applied
// beyond handlers that already ran.
func ParseArgs(r *Registry, argv []string) error {
	for i := 0; i < len(argv); i++ {
		spec := r.Lookup(argv[i])
		if spec == nil {
			continue
		}
		consumed, err := invoke(r, spec, argv[i], argv[i+1:])
		if err != nil {
			return err
		}
		i += consumed
	}
	return nil
}

// invoke coerces the spec's argument (when one is expected), records it
// as the spec's current value, and calls the bound handler with the
// coerced value and the tokens remaining after consumption. The handler
// sees the identical contract from both argv parsing and console
// dispatch. Returns how many tokens beyond the name were consumed.
func invoke(r *Registry, spec *Spec, name string, rest []string) (int, error) {
	var v Value
	consumed := 0

	if spec.Input != InputIgnore {
		if len(rest) == 0 {
			return 0, usage.MissingInput(name)
		}
		coerced, err := Coerce(rest[0], spec.Input)
		if err != nil {
			return 0, err
		}
		v = coerced
		consumed = 1
		rest = rest[1:]
		r.setValue(spec.Name, v)
	}

	h := r.handlerFor(spec)
	if h == nil {
		return consumed, nil
	}
	return consumed, h(v, rest)
}
