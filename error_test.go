// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractErrorPredictsExpectedTerminals(t *testing.T) {
	// Start -> 'a' 'b'
	rStart := NewRule(ntStart, tsym(termX), tsym(termY))
	g, err := NewGrammar(ntStart, []*Rule[nt, term]{rStart})
	require.NoError(t, err)

	chart := BuildChart[nt, term, strSrc](g, litMatcher, strSrc("c"))
	require.False(t, chart.CompleteMatch)

	pe := ExtractError(g, chart)
	assert.Equal(t, NoMatch, pe.Kind)
	assert.Equal(t, 0, pe.Position)
	require.Len(t, pe.Predictions, 1)
	assert.Equal(t, termX, pe.Predictions[0].Terminal)
	assert.NotEmpty(t, pe.Predictions[0].Path)
	assert.Contains(t, pe.Error(), "NoMatch")
}

func TestExtractErrorPartialMatchKind(t *testing.T) {
	// Start -> A A; A -> 'a'; input "a" reaches the end but Start never
	// completes.
	rA := NewRule(ntA, tsym(termX))
	rStart := NewRule(ntStart, sym(ntA), sym(ntA))
	g, err := NewGrammar(ntStart, []*Rule[nt, term]{rStart, rA})
	require.NoError(t, err)

	chart := BuildChart[nt, term, strSrc](g, litMatcher, strSrc("a"))
	assert.True(t, chart.CompleteMatch)
	assert.Equal(t, 0, chart.MatchCount)

	pe := ExtractError(g, chart)
	assert.Equal(t, PartialMatch, pe.Kind)
}

func TestExtractErrorDeduplicatesTerminals(t *testing.T) {
	// Start -> A | B; A -> 'a'; B -> 'a' -- two distinct rules predicting
	// the same terminal at the same position must collapse to one
	// Prediction.
	rA := NewRule(ntA, tsym(termX))
	rB := NewRule(ntB, tsym(termX))
	rStartA := NewRule(ntStart, sym(ntA))
	rStartB := NewRule(ntStart, sym(ntB))
	g, err := NewGrammar(ntStart, []*Rule[nt, term]{rStartA, rStartB, rA, rB})
	require.NoError(t, err)

	chart := BuildChart[nt, term, strSrc](g, litMatcher, strSrc("c"))
	pe := ExtractError(g, chart)
	assert.Len(t, pe.Predictions, 1)
	assert.Equal(t, termX, pe.Predictions[0].Terminal)
}
