// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jwalk implements a streaming, push-based JSON tokenizer.
//
// A Parser walks a byte buffer exactly once and invokes a user-supplied
// Observer for every syntactic element it identifies: values, object keys,
// and structural delimiters. It does not build a tree, does not allocate,
// and does not copy payload bytes; it emits byte ranges referring back into
// the caller's input together with a compact Info classification of what
// that range is.
//
// # Walking
//
// Call Parse, or ParseBytes/ParseString for the common input types,
// supplying an Observer:
//
//	code := jwalk.ParseString(`{"a": [1, 2, 3]}`, 0, func(start, end int, info jwalk.Info) int {
//	    log.Printf("%v at [%d,%d)", info, start, end)
//	    return 1 // continue
//	})
//	if code < 0 {
//	    log.Fatalf("parse failed: %v", jwalk.DescribeError(mem.S(`{"a": [1, 2, 3]}`), code))
//	}
//
// Parse returns the offset just past the last byte consumed on success,
// including an early stop the observer requests by returning 0, or a
// negative value on malformed input or when the observer returns a negative
// code; see Observer and Parse for the full contract.
//
// # Classification
//
// Every event's Info carries exactly one kind bit (String, Number, True,
// False, Null, Array, or Object, plus Comma and Colon when
// Parser.EmitPunctuation is set) and, for scalars and strings, exactly one
// role bit (Value or Key); composites instead carry Open or Close. A small
// set of modifier bits (HasEscape, HasFraction, HasExponent, Negative) add
// detail an observer would otherwise have to re-scan the span to recover.
//
// # Reuse
//
// A *Parser's zero value is ready to use, and a *Parser may be reused
// across calls to Parse to avoid reallocating its internal frame stack for
// documents of similar nesting depth.
//
// Decoding a String or Number event's span — unescaping, Unicode
// normalization, numeric conversion — is deliberately left to the caller;
// the tokenizer only locates and classifies.
package jwalk
