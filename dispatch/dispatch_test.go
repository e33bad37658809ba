package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/console-tools/console/usage"
)

type capture struct {
	fired bool
	value Value
	args  []string
}

func (c *capture) handler(v Value, args []string) error {
	c.fired = true
	c.value = v
	c.args = args
	return nil
}

func TestParseArgs_RoundTrip(t *testing.T) {
	r := NewRegistry()
	var got capture
	_, err := r.Register(Spec{
		Name:    "--count",
		Input:   InputInt,
		Default: IntValue(0),
		Handler: got.handler,
	})
	require.NoError(t, err)

	require.NoError(t, ParseArgs(r, []string{"--count", "5", "extra"}))
	require.True(t, got.fired)
	require.Equal(t, int64(5), got.value.Int())
	require.Equal(t, []string{"extra"}, got.args)

	v, ok := r.Value("--count")
	require.True(t, ok)
	require.Equal(t, int64(5), v.Int())
}

func TestParseArgs_AbsentFlagNeverFires(t *testing.T) {
	r := NewRegistry()
	var got capture
	_, err := r.Register(Spec{
		Name:    "--count",
		Input:   InputInt,
		Default: IntValue(9),
		Handler: got.handler,
	})
	require.NoError(t, err)

	require.NoError(t, ParseArgs(r, []string{"unrelated", "tokens"}))
	require.False(t, got.fired)

	v, ok := r.Value("--count")
	require.True(t, ok)
	require.Equal(t, int64(9), v.Int())
}

func TestParseArgs_BadIntegerToken(t *testing.T) {
	r := NewRegistry()
	var got capture
	_, err := r.Register(Spec{Name: "--count", Input: InputInt, Handler: got.handler})
	require.NoError(t, err)

	err = ParseArgs(r, []string{"--count", "five"})
	require.Error(t, err)
	require.False(t, got.fired)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.BadIntegerFormat, ue.Kind)
}

func TestParseArgs_MissingArgument(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Spec{Name: "--count", Input: InputInt, Handler: noopHandler})
	require.NoError(t, err)

	err = ParseArgs(r, []string{"--count"})
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.MissingArgument, ue.Kind)
}

func TestParseArgs_ConsumedArgumentNotRematched(t *testing.T) {
	// "--name --verbose": the string argument is consumed by --name and
	// must not fire --verbose.
	r := NewRegistry()
	var name, verbose capture
	_, err := r.Register(Spec{Name: "--name", Input: InputString, Handler: name.handler})
	require.NoError(t, err)
	_, err = r.Register(Spec{Name: "--verbose", Handler: verbose.handler})
	require.NoError(t, err)

	require.NoError(t, ParseArgs(r, []string{"--name", "--verbose"}))
	require.True(t, name.fired)
	require.Equal(t, "--verbose", name.value.Str())
	require.False(t, verbose.fired)
}

func TestParseArgs_MultipleFlagsFireInOrder(t *testing.T) {
	r := NewRegistry()
	var order []string
	record := func(name string) Handler {
		return func(_ Value, _ []string) error {
			order = append(order, name)
			return nil
		}
	}
	_, err := r.Register(Spec{Name: "--a", Handler: record("a")})
	require.NoError(t, err)
	_, err = r.Register(Spec{Name: "--b", Handler: record("b")})
	require.NoError(t, err)

	require.NoError(t, ParseArgs(r, []string{"--b", "skip", "--a"}))
	require.Equal(t, []string{"b", "a"}, order)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Spec{Name: "help", Handler: noopHandler})
	require.NoError(t, err)

	err = Dispatch(r, []string{"bogus"})
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.UnknownCommand, ue.Kind)
}

func TestDispatch_CaseSensitive(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Spec{Name: "help", Handler: noopHandler})
	require.NoError(t, err)

	err = Dispatch(r, []string{"Help"})
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.UnknownCommand, ue.Kind)
}

func TestDispatch_HandlerSeesRemainingTokens(t *testing.T) {
	r := NewRegistry()
	var got capture
	_, err := r.Register(Spec{Name: "open", Input: InputString, Handler: got.handler})
	require.NoError(t, err)

	require.NoError(t, Dispatch(r, []string{"open", "file.txt", "ro", "fast"}))
	require.Equal(t, "file.txt", got.value.Str())
	require.Equal(t, []string{"ro", "fast"}, got.args)
}

func TestDispatch_IgnoreInputConsumesNothing(t *testing.T) {
	r := NewRegistry()
	var got capture
	_, err := r.Register(Spec{Name: "list", Handler: got.handler})
	require.NoError(t, err)

	require.NoError(t, Dispatch(r, []string{"list", "a", "b"}))
	require.True(t, got.value.IsZero())
	require.Equal(t, []string{"a", "b"}, got.args)
}

func TestDispatch_EmptyTokensIsNoop(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Dispatch(r, nil))
}

func TestDispatch_FallbackHandler(t *testing.T) {
	r := NewRegistry()
	var got capture
	r.SetFallback(got.handler)

	_, err := r.Register(Spec{Name: "status"})
	require.NoError(t, err)

	require.NoError(t, Dispatch(r, []string{"status"}))
	require.True(t, got.fired)
}

func TestDispatch_OwnHandlerBeatsFallback(t *testing.T) {
	r := NewRegistry()
	var fallback, own capture
	r.SetFallback(fallback.handler)

	_, err := r.Register(Spec{Name: "status", Handler: own.handler})
	require.NoError(t, err)

	require.NoError(t, Dispatch(r, []string{"status"}))
	require.True(t, own.fired)
	require.False(t, fallback.fired)
}

func TestDispatch_NoHandlerAnywhere(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(Spec{Name: "status"})
	require.NoError(t, err)

	// Registered without a handler and no fallback installed: dispatch
	// still records the value and returns cleanly.
	require.NoError(t, Dispatch(r, []string{"status"}))
}
