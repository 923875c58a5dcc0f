// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// A StateSet is the set of items anchored at one source offset (Sᵢ in the
// spec). Items is in FIFO insertion order -- the order BuildChart relies on
// to close the set -- and seen gives O(1) duplicate detection over the
// (RuleID, Start, Dot) triple.
type StateSet struct {
	Items []Item

	seen *hashset.Set
}

func newStateSet() *StateSet {
	return &StateSet{seen: hashset.New()}
}

// add inserts it if not already present, returning whether it was added.
func (s *StateSet) add(it Item) bool {
	if s.seen.Contains(it) {
		return false
	}
	s.seen.Add(it)
	s.Items = append(s.Items, it)
	return true
}

// A Chart is the result of recognizing a source against a grammar: one
// StateSet per reached offset, plus whether recognition reached the end of
// the input and how many complete start-symbol derivations landed there.
type Chart struct {
	Sets          []*StateSet
	CompleteMatch bool
	MatchCount    int
}

// set is the last, rightmost reached state set -- S[len(Sets)-1].
func (c *Chart) set() *StateSet {
	return c.Sets[len(c.Sets)-1]
}

// Position is the offset of the rightmost reached state set.
func (c *Chart) Position() int {
	return len(c.Sets) - 1
}

// BuildChart recognizes src against grammar using matcher, producing a
// Chart. It never itself returns an error: an unsuccessful recognition is
// reported through Chart.CompleteMatch and Chart.MatchCount, which the
// caller (ordinarily Parse) inspects to decide whether to build a tree or
// an error.
//
// Ported from original_source/include/larley/parsing-chart.hpp's
// parseChart: predict/scan/complete over ascending offsets, each state set
// processed to a FIFO fixed point before moving on, with Aycock-Horspool
// "magic completion" advancing items whose next symbol is nullable.
func BuildChart[N, T comparable, Src Source](g *Grammar[N, T], m Matcher[Src, T], src Src) *Chart {
	n := src.Len()
	sets := make([]*StateSet, n+1)
	for i := range sets {
		sets[i] = newStateSet()
	}

	for _, r := range g.RulesFor(g.Start) {
		sets[0].add(Item{RuleID: r.id, Start: 0, Dot: 0})
	}

	maxReached := 0
	for i := 0; i < len(sets); i++ {
		set := sets[i]

		for k := 0; k < len(set.Items); k++ {
			it := set.Items[k]

			if g.itemIsComplete(it) {
				rule := g.RuleAt(it.RuleID)
				for _, parent := range sets[it.Start].Items {
					if g.itemIsAtSymbol(parent, rule.Product) {
						set.add(parent.advanced())
					}
				}
				continue
			}

			sym, _ := g.itemSymbol(it)
			if !sym.IsTerminal() {
				nt := sym.NT()
				if g.IsNullable(nt) {
					set.add(it.advanced())
				}
				for _, r := range g.RulesFor(nt) {
					set.add(Item{RuleID: r.id, Start: i, Dot: 0})
				}
				continue
			}

			length := m(src, i, sym.LT())
			if length > 0 {
				tracer().Debugf("earley: scan matched %d at offset %d", length, i)
				sets[i+length].add(it.advanced())
			}
		}

		if len(set.Items) > 0 && i > maxReached {
			maxReached = i
		}
	}

	chart := &Chart{Sets: sets[:maxReached+1]}
	chart.CompleteMatch = maxReached == n

	last := chart.set()
	for _, it := range last.Items {
		if it.Start == 0 && g.itemIsComplete(it) && g.RuleAt(it.RuleID).Product == g.Start {
			chart.MatchCount++
		}
	}

	tracer().Debugf("earley: chart built, %d sets, complete=%v, matches=%d",
		len(chart.Sets), chart.CompleteMatch, chart.MatchCount)

	return chart
}
