package usage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code int
	}{
		{"bad integer", InvalidInteger("x"), 2},
		{"bad float", InvalidFloat("x"), 2},
		{"missing argument", MissingInput("--count"), 2},
		{"unknown command", NotACommand("bogus"), 1},
		{"duplicate", Duplicate("--count"), 1},
		{"empty", Empty(), 1},
		{"unknown kind", &Error{Kind: Kind(99)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.code, tt.err.ExitCode())
		})
	}
}

func TestError_Taxonomy(t *testing.T) {
	require.True(t, InvalidInteger("x").IsInput())
	require.True(t, InvalidFloat("x").IsInput())
	require.True(t, MissingInput("f").IsInput())
	require.False(t, NotACommand("c").IsInput())

	require.True(t, NotACommand("c").IsCall())
	require.True(t, Duplicate("f").IsCall())
	require.True(t, Empty().IsCall())
	require.False(t, InvalidInteger("x").IsCall())
}

func TestNotACommand_SuggestionsInMessage(t *testing.T) {
	err := NotACommand("hlep", "help")
	require.Contains(t, err.Error(), "hlep")
	require.Contains(t, err.Error(), "Did you mean: help?")
	require.Equal(t, []string{"help"}, err.Suggestions)
}

func TestNotACommand_NoSuggestions(t *testing.T) {
	err := NotACommand("bogus")
	require.NotContains(t, err.Error(), "Did you mean")
}

func TestError_MessagesNameTheToken(t *testing.T) {
	require.Contains(t, InvalidInteger("five").Error(), "five")
	require.Contains(t, MissingInput("--count").Error(), "--count")
	require.Contains(t, Duplicate("--count").Error(), "--count")
}
