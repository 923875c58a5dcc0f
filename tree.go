// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// An Edge is one parsed node: the rule that matched, and the source span
// [Start, End) it covers. Children gives the edges for the symbols of
// rule.Symbols that were not discarded, in left-to-right order; a
// non-discarded terminal symbol contributes a leaf edge (Rule nil) spanning
// what it consumed, and a discarded symbol contributes no edge at all.
type Edge[N, T comparable] struct {
	Rule     *Rule[N, T]
	Start    int
	End      int
	Children []*Edge[N, T]
}

// A Tree is a single disambiguated parse, rooted at the edge that matched
// the grammar's start symbol over the whole input.
type Tree[N, T comparable] struct {
	Root *Edge[N, T]
}

// reverseIndex groups, for each end offset, the completed items that
// reached it (chart.Sets[end] itself, filtered to complete items), sorted
// by (RuleID, -span length). Ported from
// original_source/include/larley/parsing-tree.hpp's construction of R[j]
// so that, when several rules complete over the same span, the one with the
// lowest id and the widest reach is tried first.
func reverseIndex[N, T comparable](g *Grammar[N, T], chart *Chart) [][]Item {
	r := make([][]Item, len(chart.Sets))
	for end, set := range chart.Sets {
		for _, it := range set.Items {
			if g.itemIsComplete(it) {
				r[end] = append(r[end], it)
			}
		}
	}
	for _, items := range r {
		sort.Slice(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if a.RuleID != b.RuleID {
				return a.RuleID < b.RuleID
			}
			return a.Start < b.Start
		})
	}
	return r
}

// BuildTree picks one disambiguating derivation out of chart and returns
// it as a Tree, re-deriving each terminal's consumed length with m. chart
// must have a completed item for the grammar's start symbol spanning
// [0, end); callers ordinarily get end from Chart.Position() on a
// CompleteMatch chart, or from a caller-chosen offset under
// WithAcceptPartial.
//
// Ported from parsing-tree.hpp's buildTree: an outer explicit-stack loop
// walks the tree being assembled (bounding native stack usage against
// pathologically deep or wide grammars), while each rule's own children are
// found by a small bounded backtracking search over at most
// len(rule.Symbols) split points.
func BuildTree[N, T comparable, Src Source](g *Grammar[N, T], m Matcher[Src, T], src Src, chart *Chart, end int) (*Tree[N, T], bool) {
	rev := reverseIndex(g, chart)

	root := findRootEdge(g, rev, end)
	if root == nil {
		return nil, false
	}

	stack := arraystack.New()
	stack.Push(root)

	for !stack.Empty() {
		v, _ := stack.Pop()
		edge := v.(*Edge[N, T])

		if len(edge.Rule.Symbols) == 0 {
			continue
		}

		children, ok := splitChildren(g, m, src, rev, edge.Rule, 0, edge.Start, edge.End)
		if !ok {
			return nil, false
		}
		edge.Children = children
		for _, child := range children {
			if child.Rule != nil && len(child.Rule.Symbols) > 0 {
				stack.Push(child)
			}
		}
	}

	return &Tree[N, T]{Root: root}, true
}

// findRootEdge locates a completed item for the grammar's start symbol
// spanning [0, end), preferring the earliest-declared matching rule.
func findRootEdge[N, T comparable](g *Grammar[N, T], rev [][]Item, end int) *Edge[N, T] {
	for _, it := range rev[end] {
		rule := g.RuleAt(it.RuleID)
		if rule.Product == g.Start && it.Start == 0 {
			return &Edge[N, T]{Rule: rule, Start: 0, End: end}
		}
	}
	return nil
}

// splitChildren finds, by bounded backtracking, the children of rule's
// symbols[pos:] so that they exactly cover [at, end). Non-discarded
// children are collected in left-to-right order; discarded symbols
// contribute only their span, never an Edge.
func splitChildren[N, T comparable, Src Source](g *Grammar[N, T], m Matcher[Src, T], src Src, rev [][]Item, rule *Rule[N, T], pos, at, end int) ([]*Edge[N, T], bool) {
	if pos == len(rule.Symbols) {
		if at == end {
			return nil, true
		}
		return nil, false
	}

	sym := rule.Symbols[pos]

	if sym.IsTerminal() {
		length := m(src, at, sym.LT())
		if length <= 0 || at+length > end {
			return nil, false
		}
		rest, ok := splitChildren(g, m, src, rev, rule, pos+1, at+length, end)
		if !ok {
			return nil, false
		}
		if rule.IsDiscarded(pos) {
			return rest, true
		}
		leaf := &Edge[N, T]{Start: at, End: at + length}
		return append([]*Edge[N, T]{leaf}, rest...), true
	}

	nt := sym.NT()
	for candidateEnd := end; candidateEnd >= at; candidateEnd-- {
		for _, it := range rev[candidateEnd] {
			r := g.RuleAt(it.RuleID)
			if r.Product != nt || it.Start != at {
				continue
			}
			rest, ok := splitChildren(g, m, src, rev, rule, pos+1, candidateEnd, end)
			if !ok {
				continue
			}
			if rule.IsDiscarded(pos) {
				return rest, true
			}
			child := &Edge[N, T]{Rule: r, Start: at, End: candidateEnd}
			return append([]*Edge[N, T]{child}, rest...), true
		}
	}
	return nil, false
}
