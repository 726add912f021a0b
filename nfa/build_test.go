package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishumausam/openregex/ast"
	"github.com/mishumausam/openregex/nfa"
)

func TestBuildRejectsExpansionOverLimit(t *testing.T) {
	root, groupCount, groupNames, err := ast.Parse("<x>{1,5}", wordFactory)
	require.NoError(t, err)

	_, err = nfa.Build(root, groupCount, groupNames, nfa.WithMaxExpansion(3))
	require.Error(t, err)

	var expansionErr *nfa.ExpansionError
	assert.ErrorAs(t, err, &expansionErr)
}

func TestBuildAcceptsExpansionWithinLimit(t *testing.T) {
	root, groupCount, groupNames, err := ast.Parse("<x>{1,5}", wordFactory)
	require.NoError(t, err)

	_, err = nfa.Build(root, groupCount, groupNames, nfa.WithMaxExpansion(10))
	require.NoError(t, err)
}
