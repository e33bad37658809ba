package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/console-tools/console/usage"
)

func suggestRegistry(t *testing.T, names ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, n := range names {
		_, err := r.Register(Spec{Name: n, Handler: noopHandler})
		require.NoError(t, err)
	}
	return r
}

func TestSuggest_CloseMatch(t *testing.T) {
	r := suggestRegistry(t, "help", "exit", "status")

	got := Suggest(r, "hlep", 3)
	require.Contains(t, got, "help")
}

func TestSuggest_NoMatchForDistantInput(t *testing.T) {
	r := suggestRegistry(t, "help", "exit")

	got := Suggest(r, "xxxxxxxxxx", 3)
	require.Empty(t, got)
}

func TestSuggest_OrderedByDistance(t *testing.T) {
	r := suggestRegistry(t, "track", "trace", "teardown")

	got := Suggest(r, "trak", 3)
	require.NotEmpty(t, got)
	require.Equal(t, "track", got[0])
}

func TestSuggest_RespectsMaxResults(t *testing.T) {
	r := suggestRegistry(t, "aa", "ab", "ac", "ad")

	got := Suggest(r, "a", 2)
	require.Len(t, got, 2)
}

func TestSuggest_ExactMatchExcluded(t *testing.T) {
	r := suggestRegistry(t, "help")

	// Distance zero is not a suggestion; lookup would have found it.
	got := Suggest(r, "help", 3)
	require.Empty(t, got)
}

func TestDispatch_UnknownCommandCarriesSuggestions(t *testing.T) {
	r := suggestRegistry(t, "help", "exit")

	err := Dispatch(r, []string{"hepl"})
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Contains(t, ue.Suggestions, "help")
	require.Contains(t, ue.Error(), "help")
}
