// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"fmt"

	"go4.org/mem"
)

// Error categories a failed walk falls into. These are documentation only:
// Parse reports failure purely as a negative int per its contract, never as
// a typed error value, since the parser is a pure function of input and
// observer with no state to attach a richer error to. DescribeError exists
// for callers, such as tests and diagnostics, that want a human-readable
// message built from a failing return value after the fact.
const (
	// ErrStructural covers an unexpected byte where a value, key, ':', ',',
	// ']', '}', or '"' was required, trailing input after the top-level
	// value, or input truncated mid-token.
	ErrStructural = "structural"
	// ErrLexical covers an invalid escape, malformed \u hex, an unpaired or
	// misordered surrogate, a raw control byte inside a string, or a
	// malformed number.
	ErrLexical = "lexical"
	// ErrDepth covers nesting beyond Parser.MaxDepth.
	ErrDepth = "depth"
)

// ParseOffset decodes the byte offset encoded in a negative return value
// from Parse, per the contract in §6.3: a parser-detected error returns
// -(offset+1). It is the caller's responsibility to know, from how the
// Observer itself is written, whether a given negative return originated
// from the parser or was passed through verbatim from the observer; this
// function assumes the former.
func ParseOffset(code int) int {
	if code >= 0 {
		return -1
	}
	return -code - 1
}

// DescribeError builds a human-readable error, in the style of jtree's
// posError ("%s (offset %d)"), describing a negative return value from
// Parse as a failure at a specific offset in input. It returns nil for a
// non-negative code. DescribeError never consults hidden parser state — it
// is reconstructed purely from the returned code and the original input,
// matching the "pure function of input + observer" design of Parse itself.
func DescribeError(input mem.RO, code int) error {
	if code >= 0 {
		return nil
	}
	offset := ParseOffset(code)
	if offset > input.Len() {
		return fmt.Errorf("start offset %d exceeds input length %d", offset, input.Len())
	}
	if offset < 0 {
		return fmt.Errorf("observer-requested stop (code %d)", code)
	}
	if offset == input.Len() {
		return fmt.Errorf("unexpected end of input (offset %d)", offset)
	}
	return fmt.Errorf("malformed input at offset %d (byte %q)", offset, input.At(offset))
}
