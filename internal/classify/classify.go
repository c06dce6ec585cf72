// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package classify holds the byte-classification tables used by the walk
// functions in package jwalk. They are split out from the walk control flow
// the same way jtree/internal/escape keeps string quoting independent of the
// scanner that drives it: a small, heavily-tested unit with no control-flow
// dependencies of its own.
package classify

// IsSpace reports whether b is JSON whitespace (space, tab, LF, CR).
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsHexDigit reports whether b is a hexadecimal digit, case-insensitive.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexVal returns the numeric value of the hex digit b. The caller must have
// already verified IsHexDigit(b); HexVal does not check.
func HexVal(b byte) int {
	switch {
	case b <= '9':
		return int(b - '0')
	case b <= 'F':
		return int(b-'A') + 10
	default:
		return int(b-'a') + 10
	}
}
