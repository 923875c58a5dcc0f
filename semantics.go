// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import "fmt"

// A Value is a dynamically typed semantic result, carrying the source span
// it was derived from. It wraps an any rather than being generic over a
// caller type: a single grammar's rules can each produce a different
// concrete Go type, and Go has no generic methods, so the type-safe
// accessor is the free function As instead.
type Value struct {
	Start, End int
	inner      any
}

// As extracts v's payload as T, panicking with a descriptive message if
// v does not hold a T. Actions that assume a child's shape (as every
// action does, since the grammar is fixed) use this rather than a checked
// assertion.
func As[T any](v Value) T {
	t, ok := v.inner.(T)
	if !ok {
		panic(fmt.Sprintf("earley: value holds %T, not %T", v.inner, t))
	}
	return t
}

// NewValue builds a Value wrapping payload, spanning [start, end). Actions
// do not need it: they return a bare payload, which the evaluator wraps.
func NewValue(start, end int, payload any) Value {
	return Value{Start: start, End: end, inner: payload}
}

// Payload returns v's wrapped value without a type assertion, for actions
// that only need to forward a child's value into a container (a JSON array
// or object, say) without caring what concrete type it holds -- As would
// require naming that type, which defeats the point when the value may
// legitimately be nil.
func (v Value) Payload() any {
	return v.inner
}

// Action computes the semantic value of one rule's match from its
// children's already-computed values (after discarded positions have been
// removed) and the caller-supplied evaluation context.
type Action[Ctx any] func(children []Value, cctx Ctx) any

// Actions is a grammar's semantic action table, indexed by Rule.ID(). A
// rule with no registered action defaults to: the first surviving child's
// value, passed through unchanged, if at least one child remains; nil if
// none do. That default mirrors a grammar where most rules exist purely
// to restructure, not to compute -- see
// original_source/include/larley/apply-semantics.hpp's applySemantics.
type Actions[N, T comparable, Ctx any] struct {
	g      *Grammar[N, T]
	byRule map[int]Action[Ctx]
}

// NewActions builds an empty action table over g.
func NewActions[N, T comparable, Ctx any](g *Grammar[N, T]) *Actions[N, T, Ctx] {
	return &Actions[N, T, Ctx]{g: g, byRule: make(map[int]Action[Ctx])}
}

// On registers fn as the action for rule. It returns the table for
// chaining, matching Builder's style.
func (a *Actions[N, T, Ctx]) On(rule *Rule[N, T], fn Action[Ctx]) *Actions[N, T, Ctx] {
	a.byRule[rule.id] = fn
	return a
}

// Evaluate walks tree bottom-up, applying the registered action for each
// edge's rule (or the pass-through default) and returns the root's value.
//
// Ported from apply-semantics.hpp's post-order iterate: children are
// evaluated before their parent, every child edge contributes one value to
// the slice an action sees (BuildTree gives discarded positions no edge, so
// they never reach it), and the result is stamped with the edge's span
// regardless of what the action itself returns.
func Evaluate[N, T comparable, Ctx any](actions *Actions[N, T, Ctx], tree *Tree[N, T], cctx Ctx) Value {
	return evalEdge(actions, tree.Root, cctx)
}

func evalEdge[N, T comparable, Ctx any](actions *Actions[N, T, Ctx], edge *Edge[N, T], cctx Ctx) Value {
	if edge.Rule == nil {
		// A leaf edge: a terminal match contributes only its span. The
		// engine never decodes the matched element itself -- an action
		// that needs the literal text closes over the source directly.
		return Value{Start: edge.Start, End: edge.End}
	}

	children := make([]Value, 0, len(edge.Children))
	for _, child := range edge.Children {
		children = append(children, evalEdge(actions, child, cctx))
	}

	fn, ok := actions.byRule[edge.Rule.id]
	var payload any
	switch {
	case ok:
		payload = fn(children, cctx)
	case len(children) > 0:
		payload = children[0].inner
	default:
		payload = nil
	}

	return Value{Start: edge.Start, End: edge.End, inner: payload}
}
