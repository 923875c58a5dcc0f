// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package earley

// Source is an opaque, addressable input sequence. The engine never
// inspects its elements -- only Len, to size the chart -- leaving every
// other concern to the caller's Matcher.
//
// Concrete sources (a string, a byte slice, a token slice) implement this
// directly; see package strmatch for the bundled string-terminal matcher's
// sources.
type Source interface {
	Len() int
}

// Matcher decides whether, and how far, a terminal matches at a given
// offset into src. It must return a positive match length on success, and
// a non-positive value on failure. Matchers must be pure functions of
// their arguments: for fixed (src, offset, terminal) they must always
// return the same length, and must not mutate shared state, so that a
// single Matcher value is safe to reuse (even concurrently) across
// distinct parses.
type Matcher[Src Source, T comparable] func(src Src, offset int, terminal T) int
