// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

package strmatch

// Match is an earley.Matcher[Src, Term] over any byteSource: StringSource
// or BytesSource. Register it directly as the matcher argument to
// earley.Parse / earley.BuildChart / earley.BuildTree.
//
// Ported from string-grammar.hpp's StringGrammar::match, one case per
// Term variant.
func Match[Src byteSource](src Src, offset int, term Term) int {
	data := src.Bytes()

	switch term.kind {
	case literalKind:
		return matchLiteral(data, offset, term.literal)

	case choiceKind:
		for _, alt := range term.choiceList() {
			if n := matchLiteral(data, offset, alt); n > 0 {
				return n
			}
		}
		return -1

	case rangeKind:
		if offset >= len(data) {
			return -1
		}
		c := data[offset]
		if c >= term.lo && c <= term.hi {
			return 1
		}
		return -1

	case regexpKind:
		re := compiledRegexp(anchorPattern(term.pattern))
		loc := re.FindIndex(data[offset:])
		if loc == nil || loc[0] != 0 {
			return -1
		}
		return loc[1]

	default:
		return -1
	}
}

// matchLiteral reports the length of partial if it occurs exactly at
// offset in data, else a negative sentinel. The bounds check is
// index+len(partial) > len(data), fixing the off-by-one that an
// index+len(partial) >= len(data) check would introduce (it would reject
// a partial match reaching exactly the end of data).
func matchLiteral(data []byte, offset int, partial string) int {
	if offset < 0 || offset+len(partial) > len(data) {
		return -1
	}
	if string(data[offset:offset+len(partial)]) == partial {
		return len(partial)
	}
	return -1
}
