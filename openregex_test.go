package openregex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishumausam/openregex"
	"github.com/mishumausam/openregex/ast"
	"github.com/mishumausam/openregex/token"
	"github.com/mishumausam/openregex/words"
)

func TestCompileAndFind(t *testing.T) {
	re, err := openregex.Compile("<the> <cat>", words.Factory)
	require.NoError(t, err)

	match, ok := re.Find(openregex.Split("the quick the cat sat"), 0)
	require.True(t, ok)
	assert.Equal(t, 2, match.Start)
	assert.Equal(t, 4, match.End)
}

func TestCompileNamedGroup(t *testing.T) {
	re, err := openregex.Compile("(<subject>:<the> <cat>) <sat>", words.Factory)
	require.NoError(t, err)

	match, ok := re.Find(openregex.Split("the cat sat"), 0)
	require.True(t, ok)

	g, ok := match.Named("subject")
	require.True(t, ok)
	assert.Equal(t, 0, g.Start)
	assert.Equal(t, 2, g.End)
}

func TestFindAllNonOverlapping(t *testing.T) {
	re, err := openregex.Compile("<a>+", words.Factory)
	require.NoError(t, err)

	matches := re.FindAll(openregex.Split("a a b a"))
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 2, matches[0].End)
	assert.Equal(t, 3, matches[1].Start)
	assert.Equal(t, 4, matches[1].End)
}

func TestMatchesRequiresWholeInput(t *testing.T) {
	re, err := openregex.Compile("<a> <b>", words.Factory)
	require.NoError(t, err)

	assert.True(t, re.Matches([]string{"a", "b"}))
	assert.False(t, re.Matches([]string{"a", "b", "c"}))
}

func TestStringRoundTrip(t *testing.T) {
	re, err := openregex.Compile("<a> | <b> | <c>", words.Factory)
	require.NoError(t, err)

	recompiled, err := openregex.Compile(re.String(), words.Factory)
	require.NoError(t, err)
	assert.True(t, re.Equal(recompiled))
}

func TestRecompileFailsWithoutSource(t *testing.T) {
	root, groupCount, groupNames, err := ast.Parse("<a>", words.Factory)
	require.NoError(t, err)

	exprCompiled, err := openregex.CompileExpr(root, groupCount, groupNames)
	require.NoError(t, err)

	_, err = exprCompiled.Recompile(words.Factory)
	assert.ErrorIs(t, err, token.ErrNoFactory)
}

func TestCompileRejectsBadPattern(t *testing.T) {
	_, err := openregex.Compile("<a> |", words.Factory)
	assert.Error(t, err)
}

func TestApplyIsBooleanSugarForFind(t *testing.T) {
	re, err := openregex.Compile("<cat>", words.Factory)
	require.NoError(t, err)

	assert.True(t, re.Apply(openregex.Split("the cat sat")))
	assert.False(t, re.Apply(openregex.Split("the dog sat")))
}
