// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nt int

const (
	ntStart nt = iota
	ntA
	ntB
	ntC
)

type term int

const (
	termX term = iota
	termY
)

func sym(n nt) Symbol[nt, term]    { return NonTerminal[nt, term](n) }
func tsym(t term) Symbol[nt, term] { return Terminal[nt, term](t) }

func TestNewGrammarRejectsEmptyRules(t *testing.T) {
	_, err := NewGrammar[nt, term](ntStart, nil)
	require.Error(t, err)
	ig, ok := err.(*InvalidGrammar[nt])
	require.True(t, ok)
	assert.Equal(t, EmptyRules, ig.Kind)
}

func TestNewGrammarRejectsUnknownStart(t *testing.T) {
	rules := []*Rule[nt, term]{
		NewRule(ntA, tsym(termX)),
	}
	_, err := NewGrammar(ntStart, rules)
	require.Error(t, err)
	ig, ok := err.(*InvalidGrammar[nt])
	require.True(t, ok)
	assert.Equal(t, UnknownStart, ig.Kind)
	assert.Equal(t, ntStart, ig.Symbol)
}

func TestNewGrammarAssignsIDsInOrder(t *testing.T) {
	r0 := NewRule(ntStart, sym(ntA))
	r1 := NewRule(ntA, tsym(termX))
	g, err := NewGrammar(ntStart, []*Rule[nt, term]{r0, r1})
	require.NoError(t, err)
	assert.Equal(t, 0, r0.ID())
	assert.Equal(t, 1, r1.ID())
	assert.Same(t, r1, g.RuleAt(1))
}

func TestNullableComputation(t *testing.T) {
	// A -> (empty); B -> A A; Start -> B
	rA := NewRule[nt, term](ntA)
	rB := NewRule(ntB, sym(ntA), sym(ntA))
	rStart := NewRule(ntStart, sym(ntB))
	g, err := NewGrammar(ntStart, []*Rule[nt, term]{rStart, rB, rA})
	require.NoError(t, err)

	assert.True(t, g.IsNullable(ntA))
	assert.True(t, g.IsNullable(ntB))
	assert.True(t, g.IsNullable(ntStart))
	assert.False(t, g.IsNullable(ntC))
}

func TestRecursiveNullableRejected(t *testing.T) {
	// A -> (empty) | B; B -> A  (both nullable, cyclically)
	rAEmpty := NewRule[nt, term](ntA)
	rA := NewRule(ntA, sym(ntB))
	rB := NewRule(ntB, sym(ntA))
	rStart := NewRule(ntStart, sym(ntA))
	_, err := NewGrammar(ntStart, []*Rule[nt, term]{rStart, rAEmpty, rA, rB})
	require.Error(t, err)
	ig, ok := err.(*InvalidGrammar[nt])
	require.True(t, ok)
	assert.Equal(t, RecursiveNullable, ig.Kind)
}

func TestDiscardedPositions(t *testing.T) {
	r := NewRule(ntStart, sym(ntA), tsym(termX), sym(ntB))
	r.Discard(1)
	assert.True(t, r.IsDiscarded(1))
	assert.False(t, r.IsDiscarded(0))
	assert.False(t, r.IsDiscarded(2))
}

func TestSymbolPanicsOnWrongAccessor(t *testing.T) {
	n := sym(ntA)
	assert.Panics(t, func() { n.LT() })

	leaf := tsym(termX)
	assert.Panics(t, func() { leaf.NT() })
}
