package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishumausam/openregex/ast"
	"github.com/mishumausam/openregex/nfa"
	"github.com/mishumausam/openregex/token"
)

var wordFactory token.Factory[string] = func(raw string) (token.Predicate[string], error) {
	word := raw
	return func(w string) bool { return w == word }, nil
}

func compile(t *testing.T, pattern string) *nfa.Automaton[string] {
	t.Helper()
	root, groupCount, groupNames, err := ast.Parse(pattern, wordFactory)
	require.NoError(t, err)
	automaton, err := nfa.Build(root, groupCount, groupNames)
	require.NoError(t, err)
	return automaton
}

func TestLiteralSequence(t *testing.T) {
	a := compile(t, "<the> <cat>")
	input := []string{"the", "cat", "sat"}

	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 2}, result.Range)
}

func TestAlternationPrefersFirstListed(t *testing.T) {
	// Both branches can match "a"; the first-listed alternative should win,
	// so only its capture group (1) is recorded.
	a := compile(t, "(<a>) | (<a>)")
	input := []string{"a"}

	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 1}, result.Range)
	assert.Contains(t, result.Groups, 1)
	assert.NotContains(t, result.Groups, 2)
}

func TestAlternationLongerMatchWinsOverEarlierListed(t *testing.T) {
	// The shorter, first-listed alternative accepts after one token, but
	// the longer, second-listed alternative can still match both tokens:
	// rule 1 (longer endIndex wins) takes priority over rule 2
	// (first-listed alternative wins), which only breaks ties between
	// matches of equal length.
	a := compile(t, "(<a>) | (<a> <a>)")
	input := []string{"a", "a"}

	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 2}, result.Range)
	assert.True(t, a.Matches(input))
}

func TestStarIsGreedy(t *testing.T) {
	a := compile(t, "(<a>|<b>)*")
	input := []string{"a", "b", "a", "c", "a"}

	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 3}, result.Range)
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	a := compile(t, "(<a>|<b>)+")

	_, ok := a.LookingAt([]string{"c"}, 0)
	assert.False(t, ok)

	result, ok := a.LookingAt([]string{"a", "b", "a", "c"}, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 3}, result.Range)
}

func TestAnchors(t *testing.T) {
	a := compile(t, "^<a> <b>$")

	result, ok := a.LookingAt([]string{"a", "b"}, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 2}, result.Range)

	_, ok = a.Find([]string{"x", "a", "b"}, 0)
	assert.False(t, ok, "start anchor should block a match not at index 0")
}

func TestMinMaxGreedyCap(t *testing.T) {
	a := compile(t, "(<x>){2,3}")
	input := []string{"x", "x", "x", "x"}

	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)
	assert.Equal(t, nfa.Range{Start: 0, End: 3}, result.Range)
}

func TestNamedGroupCapture(t *testing.T) {
	root, groupCount, groupNames, err := ast.Parse("(<subject>:<the> <cat>) <sat>", wordFactory)
	require.NoError(t, err)
	a, err := nfa.Build(root, groupCount, groupNames)
	require.NoError(t, err)

	input := []string{"the", "cat", "sat"}
	result, ok := a.LookingAt(input, 0)
	require.True(t, ok)

	idx := groupNames["subject"]
	require.Contains(t, result.Groups, idx)
	assert.Equal(t, nfa.Range{Start: 0, End: 2}, result.Groups[idx])
}

func TestFindAllAdvancesPastEmptyMatch(t *testing.T) {
	a := compile(t, "<a>*")
	input := []string{"b", "a", "a", "b"}

	results := a.FindAll(input)
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i].Range.Start, results[i-1].Range.Start)
	}
}

func TestMatchesRequiresEntireInput(t *testing.T) {
	a := compile(t, "<a> <b>")

	assert.True(t, a.Matches([]string{"a", "b"}))
	assert.False(t, a.Matches([]string{"a", "b", "c"}))
}
