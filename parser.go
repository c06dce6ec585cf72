// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"unicode/utf8"

	"go4.org/mem"

	"github.com/mfj-labs/jwalk/internal/classify"
)

// defaultMaxDepth is the nesting depth enforced by a Parser whose MaxDepth
// field is left at its zero value.
const defaultMaxDepth = 1024

// A Parser walks JSON input exactly once, delivering events to an Observer
// as it goes. The zero value is ready to use.
//
// A Parser holds no state once Parse returns; the frame stack below is kept
// between calls only so a reused *Parser does not need to reallocate it for
// documents of similar depth, the same grow-and-reuse idiom jtree.Scanner
// uses for its token-copy arena.
type Parser struct {
	// MaxDepth bounds the nesting depth of arrays and objects the parser
	// will descend into. Zero means defaultMaxDepth. Exceeding the limit is
	// reported as an error at the offending '{' or '['.
	MaxDepth int

	// StrictUTF8, when true, requires that bytes at or above 0x80 inside a
	// string form well-formed UTF-8 sequences. The default, false, passes
	// such bytes through unchecked, matching the performance-oriented
	// behavior of the reference implementation this parser is modeled on.
	StrictUTF8 bool

	// EmitPunctuation, when true, additionally emits a Comma or Colon event
	// for every structural ',' and ':' byte. The default, false, reports
	// only the events required by the core contract.
	EmitPunctuation bool

	frames []frame
}

type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

// A frame records one level of the structural context stack described by
// the data model: a composite's kind, and for objects whether the next
// token expected is a key. It exists for introspection and for bounding
// recursion depth; control flow does not consult it, since the recursive
// walk functions already carry equivalent state on the Go call stack.
type frame struct {
	kind         frameKind
	expectingKey bool
}

// Depth reports the current nesting depth of the walk in progress. It is
// intended for use from inside an Observer callback.
func (p *Parser) Depth() int { return len(p.frames) }

// parseHalt is the panic value used to unwind the recursive walk when the
// observer requests a stop or the input is rejected, the same shape as
// jtree.Stream's own panic(&SyntaxError{...}) / panic(handlerError{...})
// short-circuit, recovered once at the top of Parse.
type parseHalt struct{ code int }

// Parse walks input starting at the given offset, delivering events to obs.
// See the package doc and Observer for the return value contract.
func (p *Parser) Parse(input mem.RO, start int, obs Observer) (result int) {
	n := input.Len()
	if start > n {
		return -(start + 1)
	}

	defer func() {
		if r := recover(); r != nil {
			h, ok := r.(parseHalt)
			if !ok {
				panic(r)
			}
			result = h.code
		}
	}()

	p.frames = p.frames[:0]

	cur := skipSpace(input, start)
	cur = p.walkValue(input, cur, obs)
	cur = skipSpace(input, cur)
	if cur < n {
		p.fail(cur)
	}
	return cur
}

// Parse walks input starting at the given offset using a fresh Parser with
// default settings, delivering events to obs.
func Parse(input mem.RO, start int, obs Observer) int {
	var p Parser
	return p.Parse(input, start, obs)
}

// ParseBytes is Parse for a []byte input, with no copy of the buffer taken.
func ParseBytes(input []byte, start int, obs Observer) int {
	return Parse(mem.B(input), start, obs)
}

// ParseString is Parse for a string input, with no copy of the string taken.
func ParseString(input string, start int, obs Observer) int {
	return Parse(mem.S(input), start, obs)
}

func (p *Parser) fail(offset int) {
	panic(parseHalt{-(offset + 1)})
}

func (p *Parser) emit(obs Observer, start, end int, info Info) {
	switch code := obs(start, end, info); {
	case code == 0:
		panic(parseHalt{end})
	case code < 0:
		panic(parseHalt{code})
	}
}

func (p *Parser) pushFrame(kind frameKind, openOffset int) {
	limit := p.MaxDepth
	if limit <= 0 {
		limit = defaultMaxDepth
	}
	if len(p.frames) >= limit {
		p.fail(openOffset)
	}
	p.frames = append(p.frames, frame{kind: kind, expectingKey: kind == frameObject})
}

func (p *Parser) popFrame() { p.frames = p.frames[:len(p.frames)-1] }

// walkValue dispatches on the byte at cur, per the value-dispatcher routing
// table: composites recurse into walkArray/walkObject, scalars are consumed
// and emitted as a single event.
func (p *Parser) walkValue(input mem.RO, cur int, obs Observer) int {
	cur = skipSpace(input, cur)
	n := input.Len()
	if cur >= n {
		p.fail(cur)
	}
	switch b := input.At(cur); {
	case b == '{':
		return p.walkObject(input, cur, obs)
	case b == '[':
		return p.walkArray(input, cur, obs)
	case b == '"':
		return p.walkString(input, cur, obs, Value)
	case b == '-' || classify.IsDigit(b):
		return p.walkNumber(input, cur, obs)
	case b == 't':
		return p.walkLiteral(input, cur, obs, "true", True)
	case b == 'f':
		return p.walkLiteral(input, cur, obs, "false", False)
	case b == 'n':
		return p.walkLiteral(input, cur, obs, "null", Null)
	default:
		p.fail(cur)
		panic("unreachable")
	}
}

func (p *Parser) walkLiteral(input mem.RO, cur int, obs Observer, lit string, bit Info) int {
	end := cur + len(lit)
	if end > input.Len() {
		p.fail(input.Len())
	}
	for i := 0; i < len(lit); i++ {
		if input.At(cur+i) != lit[i] {
			p.fail(cur)
		}
	}
	p.emit(obs, cur, end, bit|Value)
	return end
}

func (p *Parser) walkNumber(input mem.RO, cur int, obs Observer) int {
	start := cur
	n := input.Len()
	info := Number | Value

	if input.At(cur) == '-' {
		info |= Negative
		cur++
		if cur >= n || !classify.IsDigit(input.At(cur)) {
			p.fail(cur)
		}
	}

	if input.At(cur) == '0' {
		cur++
		if cur < n && classify.IsDigit(input.At(cur)) {
			p.fail(cur) // extra leading zero, e.g. "01"
		}
	} else {
		for cur < n && classify.IsDigit(input.At(cur)) {
			cur++
		}
	}

	if cur < n && input.At(cur) == '.' {
		info |= HasFraction
		cur++
		digits := cur
		for cur < n && classify.IsDigit(input.At(cur)) {
			cur++
		}
		if cur == digits {
			p.fail(cur)
		}
	}

	if cur < n && (input.At(cur) == 'e' || input.At(cur) == 'E') {
		info |= HasExponent
		cur++
		if cur < n && (input.At(cur) == '+' || input.At(cur) == '-') {
			cur++
		}
		digits := cur
		for cur < n && classify.IsDigit(input.At(cur)) {
			cur++
		}
		if cur == digits {
			p.fail(cur)
		}
	}

	p.emit(obs, start, cur, info)
	return cur
}

// walkString walks a quoted string starting at the opening quote, honoring
// backslash escapes and surrogate-pair \u escapes, and emits a single event
// of kind String with the given role (Value or Key).
func (p *Parser) walkString(input mem.RO, cur int, obs Observer, role Info) int {
	start := cur
	n := input.Len()
	cur++ // consume opening quote
	info := String | role

	for {
		if cur >= n {
			p.fail(cur)
		}
		b := input.At(cur)
		switch {
		case b == '"':
			cur++
			p.emit(obs, start, cur, info)
			return cur
		case b == '\\':
			info |= HasEscape
			cur = p.walkEscape(input, cur)
		case b < 0x20:
			p.fail(cur)
		case p.StrictUTF8 && b >= 0x80:
			r, size := mem.DecodeRune(input.SliceFrom(cur))
			if r == utf8.RuneError && size <= 1 {
				p.fail(cur)
			}
			cur += size
		default:
			cur++
		}
	}
}

// walkEscape consumes one backslash escape sequence, including nested
// \uXXXX\uXXXX surrogate pairs, starting at the '\\' byte. It returns the
// offset just past the escape.
func (p *Parser) walkEscape(input mem.RO, cur int) int {
	n := input.Len()
	cur++ // consume '\\'
	if cur >= n {
		p.fail(cur)
	}
	switch input.At(cur) {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return cur + 1
	case 'u':
		hi, next := p.readHex4(input, cur+1)
		if hi >= 0xD800 && hi <= 0xDBFF {
			if next+1 >= n || input.At(next) != '\\' || input.At(next+1) != 'u' {
				p.fail(next)
			}
			lo, next2 := p.readHex4(input, next+2)
			if lo < 0xDC00 || lo > 0xDFFF {
				p.fail(next + 2)
			}
			return next2
		} else if hi >= 0xDC00 && hi <= 0xDFFF {
			p.fail(cur - 1) // lone low surrogate; point at the '\\'
		}
		return next
	default:
		p.fail(cur)
		panic("unreachable")
	}
}

// readHex4 reads exactly four hex digits at offset and returns their value
// plus the offset just past them.
func (p *Parser) readHex4(input mem.RO, offset int) (int, int) {
	n := input.Len()
	if offset+4 > n {
		p.fail(n)
	}
	v := 0
	for i := 0; i < 4; i++ {
		b := input.At(offset + i)
		if !classify.IsHexDigit(b) {
			p.fail(offset + i)
		}
		v = v<<4 | classify.HexVal(b)
	}
	return v, offset + 4
}

func (p *Parser) walkArray(input mem.RO, cur int, obs Observer) int {
	start := cur
	cur++
	p.pushFrame(frameArray, start)
	defer p.popFrame()

	p.emit(obs, start, cur, Array|Open)
	n := input.Len()
	cur = skipSpace(input, cur)
	if cur < n && input.At(cur) == ']' {
		end := cur + 1
		p.emit(obs, cur, end, Array|Close)
		return end
	}

	for {
		cur = p.walkValue(input, cur, obs)
		cur = skipSpace(input, cur)
		if cur >= n {
			p.fail(cur)
		}
		switch input.At(cur) {
		case ',':
			if p.EmitPunctuation {
				p.emit(obs, cur, cur+1, Comma)
			}
			cur = skipSpace(input, cur+1)
			if cur < n && input.At(cur) == ']' {
				p.fail(cur) // trailing comma
			}
		case ']':
			end := cur + 1
			p.emit(obs, cur, end, Array|Close)
			return end
		default:
			p.fail(cur)
		}
	}
}

func (p *Parser) walkObject(input mem.RO, cur int, obs Observer) int {
	start := cur
	cur++
	p.pushFrame(frameObject, start)
	defer p.popFrame()

	p.emit(obs, start, cur, Object|Open)
	n := input.Len()
	cur = skipSpace(input, cur)
	if cur < n && input.At(cur) == '}' {
		end := cur + 1
		p.emit(obs, cur, end, Object|Close)
		return end
	}

	frameIdx := len(p.frames) - 1
	for {
		if cur >= n || input.At(cur) != '"' {
			p.fail(cur)
		}
		p.frames[frameIdx].expectingKey = true
		cur = p.walkString(input, cur, obs, Key)
		p.frames[frameIdx].expectingKey = false

		cur = skipSpace(input, cur)
		if cur >= n || input.At(cur) != ':' {
			p.fail(cur)
		}
		if p.EmitPunctuation {
			p.emit(obs, cur, cur+1, Colon)
		}
		cur = skipSpace(input, cur+1)

		cur = p.walkValue(input, cur, obs)
		cur = skipSpace(input, cur)
		if cur >= n {
			p.fail(cur)
		}
		switch input.At(cur) {
		case ',':
			if p.EmitPunctuation {
				p.emit(obs, cur, cur+1, Comma)
			}
			cur = skipSpace(input, cur+1)
			if cur < n && input.At(cur) == '}' {
				p.fail(cur) // trailing comma
			}
		case '}':
			end := cur + 1
			p.emit(obs, cur, end, Object|Close)
			return end
		default:
			p.fail(cur)
		}
	}
}

func skipSpace(input mem.RO, cur int) int {
	n := input.Len()
	for cur < n && classify.IsSpace(input.At(cur)) {
		cur++
	}
	return cur
}
