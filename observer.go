// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jwalk

// Observer is the callback a caller supplies to Parse. It is invoked once
// per syntactic element the walk identifies, with the half-open byte range
// [start, end) of the element in the input and a classification of what
// that range is.
//
// The return value controls the walk:
//
//	 > 0: continue normally.
//	   0: stop immediately with success; Parse returns the current cursor
//	      offset, and no further events are delivered, even for pending
//	      close delimiters of composites the observer is still inside.
//	 < 0: stop immediately with error; Parse returns this value verbatim.
//
// An Observer must not retain start or end past the call, nor assume the
// input buffer outlives the call to Parse.
type Observer func(start, end int, info Info) int
