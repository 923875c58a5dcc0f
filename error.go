// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"fmt"
	"sort"
	"strings"
)

// ParseErrorKind distinguishes why a parse failed.
type ParseErrorKind int

const (
	// NoMatch means recognition stalled before consuming the whole input:
	// some offset short of the end had no viable scan.
	NoMatch ParseErrorKind = iota
	// PartialMatch means recognition reached the end of the input but no
	// rule for the start symbol completed there.
	PartialMatch
)

func (k ParseErrorKind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case PartialMatch:
		return "PartialMatch"
	default:
		return "ParseErrorKind(?)"
	}
}

// A Prediction is one terminal the grammar would have accepted at a
// ParseError's Position, together with the chain of items -- furthest
// ancestor first -- whose predictions led to it.
type Prediction[N, T comparable] struct {
	Terminal T
	Path     []Item
}

// A ParseError reports where and why a parse failed, and what the grammar
// predicted at that point, so a caller can build a caret diagnostic.
type ParseError[N, T comparable] struct {
	Kind        ParseErrorKind
	Position    int
	Predictions []Prediction[N, T]
}

func (e *ParseError[N, T]) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "earley: %s at position %d", e.Kind, e.Position)
	if len(e.Predictions) > 0 {
		b.WriteString(": expected ")
		for i, p := range e.Predictions {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", p.Terminal)
		}
	}
	return b.String()
}

// ExtractError builds a ParseError from a chart that failed to recognize
// its source, collecting every terminal predicted at the rightmost
// reached offset and the item chain that predicted each one.
//
// Ported from original_source/include/larley/parsing-errors.hpp's
// collectPredictions: scan the rightmost state set for incomplete items
// whose next symbol is a terminal, then walk each one's ancestry up
// through the parent productions that predicted it, back to a
// start-symbol item anchored at offset 0, guarding against cycles with a
// visited set.
func ExtractError[N, T comparable](g *Grammar[N, T], chart *Chart) *ParseError[N, T] {
	pos := chart.Position()
	set := chart.set()

	kind := NoMatch
	if chart.CompleteMatch {
		kind = PartialMatch
	}

	err := &ParseError[N, T]{Kind: kind, Position: pos}

	seenTerminal := make(map[any]bool)
	for _, it := range set.Items {
		sym, ok := g.itemSymbol(it)
		if !ok || !sym.IsTerminal() {
			continue
		}
		term := sym.LT()
		if seenTerminal[term] {
			continue
		}
		seenTerminal[term] = true

		err.Predictions = append(err.Predictions, Prediction[N, T]{
			Terminal: term,
			Path:     buildPath(g, chart, it),
		})
	}

	sort.Slice(err.Predictions, func(i, j int) bool {
		return fmt.Sprint(err.Predictions[i].Terminal) < fmt.Sprint(err.Predictions[j].Terminal)
	})

	return err
}

// buildPath climbs from it through the parent productions that predicted
// it, stopping at a start-symbol item anchored at offset 0. At each step,
// the current item's rule Product is the non-terminal a parent must be
// waiting on, so the parent is found by searching S[item.Start] for an item
// positioned at that non-terminal (itemIsAtSymbol); a visited set guards
// against looping back through a cycle.
func buildPath[N, T comparable](g *Grammar[N, T], chart *Chart, it Item) []Item {
	visited := map[Item]struct{}{it: {}}
	path := []Item{it}

	cur := it
	for cur.Start > 0 || g.RuleAt(cur.RuleID).Product != g.Start {
		product := g.RuleAt(cur.RuleID).Product
		found := false
		var parent Item
		for _, cand := range chart.Sets[cur.Start].Items {
			if _, ok := visited[cand]; ok {
				continue
			}
			if g.itemIsAtSymbol(cand, product) {
				parent = cand
				found = true
				break
			}
		}
		if !found {
			break
		}
		visited[parent] = struct{}{}
		path = append(path, parent)
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
