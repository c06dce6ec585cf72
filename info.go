// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jwalk

import "strings"

// Info is a bitmask classifying an event delivered to an Observer. Every
// event carries exactly one kind bit (String, Number, True, False, Null,
// Array, Object, or, when Parser.EmitPunctuation is set, Comma or Colon)
// and, for scalar and string kinds, exactly one role bit (Value or Key).
// Composite kinds (Array, Object) instead carry exactly one of Open or
// Close. The remaining bits are modifiers: orthogonal, optional detail that
// does not change which kind or role bit is set.
type Info uint32

// Kind bits. Exactly one of these is set on every event.
const (
	String Info = 1 << iota
	Number
	True
	False
	Null
	Array
	Object
	Comma // only emitted when Parser.EmitPunctuation is true
	Colon // only emitted when Parser.EmitPunctuation is true
)

// Role bits. Scalars and strings carry exactly one of Value or Key.
// Composites carry exactly one of Open or Close.
const (
	Open Info = 1 << (iota + 16)
	Close
	Value
	Key
)

// Modifier bits. These carry extra descriptive detail about a scalar or
// string event without altering its kind or role, so an observer can
// recover a number's sign or a string's need for unescaping without
// re-scanning the span.
const (
	// HasEscape is set on a String event whose span contains at least one
	// backslash escape.
	HasEscape Info = 1 << (iota + 24)
	// HasFraction is set on a Number event whose span contains a decimal
	// point.
	HasFraction
	// HasExponent is set on a Number event whose span contains an exponent.
	HasExponent
	// Negative is set on a Number event whose span begins with '-'.
	Negative
)

const (
	kindMask Info = String | Number | True | False | Null | Array | Object | Comma | Colon
	roleMask Info = Open | Close | Value | Key
	modMask  Info = HasEscape | HasFraction | HasExponent | Negative
)

// Kind returns the kind bit set in info, with role and modifier bits masked
// off.
func (info Info) Kind() Info { return info & kindMask }

// Role returns the role bit set in info, with kind and modifier bits masked
// off.
func (info Info) Role() Info { return info & roleMask }

// Has reports whether all of the bits in mask are set in info.
func (info Info) Has(mask Info) bool { return info&mask == mask }

var bitNames = []struct {
	bit  Info
	name string
}{
	{String, "String"}, {Number, "Number"}, {True, "True"}, {False, "False"},
	{Null, "Null"}, {Array, "Array"}, {Object, "Object"}, {Comma, "Comma"}, {Colon, "Colon"},
	{Open, "Open"}, {Close, "Close"}, {Value, "Value"}, {Key, "Key"},
	{HasEscape, "HasEscape"}, {HasFraction, "HasFraction"}, {HasExponent, "HasExponent"}, {Negative, "Negative"},
}

// String renders info as a "|"-joined list of its set bit names, for use in
// test failures and debugging output.
func (info Info) String() string {
	if info == 0 {
		return "none"
	}
	var names []string
	for _, bn := range bitNames {
		if info&bn.bit == bn.bit {
			names = append(names, bn.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, "|")
}
