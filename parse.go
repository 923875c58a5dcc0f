// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

import (
	"context"

	"github.com/npillmayer/schuko/tracing"
)

// Option configures a call to Parse.
type Option func(*parseConfig)

type parseConfig struct {
	acceptPartial bool
	trace         tracing.Trace
}

// WithAcceptPartial permits Parse to succeed on a prefix of src: when the
// whole input is not matched, the longest prefix [0, end) over which the
// start symbol completes becomes the accepted input. If no such prefix
// exists, Parse returns the ParseError built by ExtractError (NoMatch or
// PartialMatch, as for a parse without this option).
func WithAcceptPartial() Option {
	return func(c *parseConfig) { c.acceptPartial = true }
}

// WithTrace directs this call's phase-transition logging to tr instead of
// the package default tracer (tracing.Select("earley")). Useful for a
// caller that wants one parse's diagnostics routed separately, e.g. under
// a per-request trace key.
func WithTrace(tr tracing.Trace) Option {
	return func(c *parseConfig) { c.trace = tr }
}

// Parse recognizes src against g using m, builds a single disambiguated
// parse tree, evaluates it with actions and cctx, and returns the result.
//
// ctx is checked between phases (recognition, tree building, evaluation)
// so a caller can cancel a parse over a large or adversarial input without
// the engine threading a context.Context through its inner loops.
func Parse[N, T comparable, Src Source, Ctx any](
	ctx context.Context,
	g *Grammar[N, T],
	m Matcher[Src, T],
	src Src,
	actions *Actions[N, T, Ctx],
	cctx Ctx,
	opts ...Option,
) (Value, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	tr := cfg.trace
	if tr == nil {
		tr = tracer()
	}

	if err := ctx.Err(); err != nil {
		return Value{}, err
	}

	tr.Debugf("earley: building chart over %d-element source", src.Len())
	chart := BuildChart[N, T, Src](g, m, src)

	if err := ctx.Err(); err != nil {
		return Value{}, err
	}

	var tree *Tree[N, T]
	var ok bool
	if chart.CompleteMatch && chart.MatchCount > 0 {
		tree, ok = BuildTree[N, T, Src](g, m, src, chart, src.Len())
	} else if cfg.acceptPartial {
		// Try every offset the chart reached, longest first, for the
		// widest complete start-symbol derivation available.
		for end := chart.Position(); end >= 0 && !ok; end-- {
			tree, ok = BuildTree[N, T, Src](g, m, src, chart, end)
		}
	}
	if !ok {
		tr.Infof("earley: parse rejected at position %d", chart.Position())
		return Value{}, ExtractError(g, chart)
	}

	if err := ctx.Err(); err != nil {
		return Value{}, err
	}

	tr.Debugf("earley: evaluating tree rooted at rule %d", tree.Root.Rule.id)
	return Evaluate(actions, tree, cctx), nil
}
