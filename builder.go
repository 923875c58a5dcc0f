// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

// Builder is a fluent surface for assembling a grammar's rules: each
// product ← symbols chain is one method call sequence, terminating in
// Done to append the rule.
//
// Realized as chained methods rather than the original's operator
// overloading: Go has no operator overloading, and per the source's own
// design note the DSL's surface is cosmetic -- any idiomatic way of
// recording the same (product, symbols, discarded, action) data is
// equivalent.
type Builder[N, T comparable] struct {
	rules      []*Rule[N, T]
	whitespace N
	hasWS      bool
}

// NewBuilder starts an empty Builder.
func NewBuilder[N, T comparable]() *Builder[N, T] {
	return &Builder[N, T]{}
}

// WithWhitespace configures ws as the non-terminal implicitly flanking
// every terminal symbol added through Term from here on, discarded from
// the values actions see. Injection is suppressed before a rule's first
// symbol, between two consecutive terminals already separated by one, and
// inside ws's own rules.
func (b *Builder[N, T]) WithWhitespace(ws N) *Builder[N, T] {
	b.whitespace = ws
	b.hasWS = true
	return b
}

// Rules returns the accumulated rules, in declaration order, ready to pass
// to NewGrammar.
func (b *Builder[N, T]) Rules() []*Rule[N, T] {
	return b.rules
}

// LastRule returns the most recently completed rule, so a caller can
// register a semantic action against it (actions.On(b.LastRule(), fn))
// once the rule chain is done -- Actions is parameterized over a Ctx type
// the Builder itself has no reason to know about, so action registration
// stays a separate step rather than a chained method.
func (b *Builder[N, T]) LastRule() *Rule[N, T] {
	if len(b.rules) == 0 {
		return nil
	}
	return b.rules[len(b.rules)-1]
}

// ruleBuilder assembles one rule: a product and its symbols (with discarded
// positions tracked as they're added).
type ruleBuilder[N, T comparable] struct {
	parent        *Builder[N, T]
	product       N
	symbols       []Symbol[N, T]
	discard       []bool
	lastWasWS     bool
	lastRealIndex int
}

// Rule starts a new rule producing product.
func (b *Builder[N, T]) Rule(product N) *ruleBuilder[N, T] {
	return &ruleBuilder[N, T]{parent: b, product: product, lastWasWS: true, lastRealIndex: -1}
}

// injectWS appends a discarded reference to the configured whitespace
// non-terminal, unless there is none configured, the rule being built is
// ws's own rule, the rule has no symbols yet, or the previous symbol was
// already an injected ws.
func (rb *ruleBuilder[N, T]) injectWS() {
	if !rb.parent.hasWS || rb.product == rb.parent.whitespace || rb.lastWasWS {
		return
	}
	rb.symbols = append(rb.symbols, NonTerminal[N, T](rb.parent.whitespace))
	rb.discard = append(rb.discard, true)
	rb.lastWasWS = true
}

// Sym appends a non-terminal reference. Non-terminals are never flanked
// by whitespace injection.
func (rb *ruleBuilder[N, T]) Sym(nt N) *ruleBuilder[N, T] {
	rb.symbols = append(rb.symbols, NonTerminal[N, T](nt))
	rb.discard = append(rb.discard, false)
	rb.lastWasWS = false
	rb.lastRealIndex = len(rb.symbols) - 1
	return rb
}

// Term appends a terminal reference, flanked by whitespace injection if
// the builder is configured with one.
func (rb *ruleBuilder[N, T]) Term(t T) *ruleBuilder[N, T] {
	rb.injectWS()
	rb.symbols = append(rb.symbols, Terminal[N, T](t))
	rb.discard = append(rb.discard, false)
	rb.lastWasWS = false
	rb.lastRealIndex = len(rb.symbols) - 1
	rb.injectWS()
	return rb
}

// Discard marks the most recently added real symbol (the last Sym or
// Term, not an injected whitespace reference that may have followed it)
// as discarded, for cases beyond automatic whitespace injection -- e.g.
// punctuation the caller never wants an action to see.
func (rb *ruleBuilder[N, T]) Discard() *ruleBuilder[N, T] {
	if rb.lastRealIndex >= 0 {
		rb.discard[rb.lastRealIndex] = true
	}
	return rb
}

// Done finishes the rule -- applying any discarded positions recorded
// along the way -- and appends it to the builder, returning the parent
// Builder so calls can chain into the next Rule. Register a semantic
// action afterward with actions.On(b.LastRule(), fn), if the rule needs
// one.
func (rb *ruleBuilder[N, T]) Done() *Builder[N, T] {
	r := NewRule(rb.product, rb.symbols...)
	for i, d := range rb.discard {
		if d {
			r.Discard(i)
		}
	}
	rb.parent.rules = append(rb.parent.rules, r)
	return rb.parent
}
