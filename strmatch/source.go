// Copyright 2021-2024 Patrick Smith
// Use of this source code is subject to the MIT-style license in the LICENSE file.

// Package strmatch bundles earley.Matcher implementations and sources for
// string and byte-slice terminals: literal, choice, byte-range, and
// anchored regex variants.
package strmatch

// StringSource is an earley.Source backed by a string.
type StringSource string

// Len implements earley.Source.
func (s StringSource) Len() int { return len(s) }

// Bytes implements byteSource.
func (s StringSource) Bytes() []byte { return []byte(s) }

// BytesSource is an earley.Source backed by a byte slice.
type BytesSource []byte

// Len implements earley.Source.
func (s BytesSource) Len() int { return len(s) }

// Bytes implements byteSource.
func (s BytesSource) Bytes() []byte { return s }

// byteSource is satisfied by StringSource and BytesSource; matchers in
// this package are generic over it so they work over either without
// duplicating logic.
type byteSource interface {
	Len() int
	Bytes() []byte
}
