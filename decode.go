// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jscan/internal/escape"

	"go4.org/mem"
)

// A StructuralError reports malformed JSON input: a missing bracket or
// separator, an unterminated string or comment, an invalid literal, or
// input that ends before a value is complete.
type StructuralError struct {
	Pos     int    // offset where the error was detected, 1-based
	Message string

	err error
}

// Error satisfies the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping.
func (e *StructuralError) Unwrap() error { return e.err }

// structErr constructs a StructuralError for a panic site. The decoder and
// traversal engine propagate structural errors by panic, recovered at the
// exported entry points.
func structErr(pos int, msg string, args ...any) *StructuralError {
	return &StructuralError{Pos: pos, Message: fmt.Sprintf(msg, args...)}
}

// recoverStructural recovers a panicking *StructuralError into *errp.
// All other panics are resumed.
func recoverStructural(errp *error) {
	if p := recover(); p != nil {
		if serr, ok := p.(*StructuralError); ok {
			*errp = serr
			return
		}
		panic(p)
	}
}

// Decode decodes one JSON value from src, beginning at offset pos.  It
// returns the decoded value and the offset just past its last byte.  Input
// after the decoded value is not inspected. Offsets are 1-based; to decode
// from the beginning of the input, pass pos == 1.
//
// Malformed input is reported as a [*StructuralError]. There are no
// partial results: either a value is returned, or an error.
func Decode(src *Source, pos int) (_ Value, next int, err error) {
	defer recoverStructural(&err)
	if pos < 1 {
		return nil, 0, fmt.Errorf("invalid start offset %d", pos)
	}
	d := decoder{src}
	v, next := d.value(pos)
	return v, next, nil
}

// DecodeString decodes a single JSON value from text.
func DecodeString(text string) (Value, error) {
	v, _, err := Decode(NewSource(text), 1)
	return v, err
}

// A decoder scans values from a source by recursive descent. Its methods
// take the offset at which to begin scanning and return the offset just
// past the element scanned; they panic *StructuralError on malformed
// input.
type decoder struct {
	src *Source
}

// value scans a single value of any type at or after pos.
func (d decoder) value(pos int) (Value, int) {
	pos = d.skipPadding(pos)
	ch, ok := d.src.peek(pos)
	if !ok {
		panic(structErr(pos, "unexpected end of input"))
	}
	switch {
	case ch == '{':
		return d.object(pos)
	case ch == '[':
		return d.array(pos)
	case ch == '"':
		text, next := d.text(pos)
		return String(text), next
	case ch == '-' || isDigit(ch):
		return d.number(pos)
	default:
		return d.constant(pos)
	}
}

// object scans an object. Precondition: pos is at "{".
func (d decoder) object(pos int) (Value, int) {
	var obj Object // allocated on the first member, so {} stays EmptyObject
	cur := pos + 1
	for {
		cur = d.skipPadding(cur)
		ch, ok := d.src.peek(cur)
		if !ok {
			panic(structErr(cur, "unterminated object"))
		}
		if ch == '}' {
			if obj == nil {
				return EmptyObject, cur + 1
			}
			return obj, cur + 1
		}
		if ch == ',' {
			cur++ // member separators are optional
		}
		key, next := d.value(cur)
		text, ok := key.(String)
		if !ok {
			panic(structErr(cur, "object key must be a string, not %v", key.Kind()))
		}
		cur = d.skipPadding(next)
		if ch, ok := d.src.peek(cur); !ok || ch != ':' {
			panic(structErr(cur, `missing ":" in object member`))
		}
		val, next2 := d.value(cur + 1)
		if obj == nil {
			obj = make(Object)
		}
		obj[string(text)] = val
		cur = next2
	}
}

// array scans an array. Precondition: pos is at "[".
func (d decoder) array(pos int) (Value, int) {
	arr := Array{}
	cur := pos + 1
	for {
		cur = d.skipPadding(cur)
		ch, ok := d.src.peek(cur)
		if !ok {
			panic(structErr(cur, "unterminated array"))
		}
		if ch == ']' {
			return arr, cur + 1
		}
		if ch == ',' {
			cur++ // element separators are optional
		}
		elt, next := d.value(cur)
		arr = append(arr, elt)
		cur = next
	}
}

// text scans a string literal and resolves its escapes.
// Precondition: pos is at the opening quote.
func (d decoder) text(pos int) (string, int) {
	cur := pos + 1
	var esc bool
	for {
		ch, ok := d.src.peek(cur)
		if !ok {
			panic(structErr(pos, "unterminated string"))
		}
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			break
		}
		cur++
	}
	dec, err := escape.Unquote(mem.S(d.src.slice(pos+1, cur)))
	if err != nil {
		panic(&StructuralError{Pos: pos, Message: fmt.Sprintf("invalid string: %v", err), err: err})
	}
	return string(dec), cur + 1
}

// number scans a numeric literal: the maximal run of characters that can
// occur in a number is consumed, then checked against the number grammar.
// Precondition: pos is at a digit or "-".
func (d decoder) number(pos int) (Value, int) {
	cur := pos
	for {
		ch, ok := d.src.peek(cur)
		if !ok || !isNumRune(ch) {
			break
		}
		cur++
	}
	return parseNumber(pos, d.src.slice(pos, cur)), cur
}

// constant scans one of the literals true, false, or null.
func (d decoder) constant(pos int) (Value, int) {
	for _, c := range [...]struct {
		lit string
		val Value
	}{{"true", Bool(true)}, {"false", Bool(false)}, {"null", Null}} {
		if d.matches(pos, c.lit) {
			return c.val, pos + len(c.lit)
		}
	}
	ch, _ := d.src.peek(pos)
	panic(structErr(pos, "unexpected %q", ch))
}

// matches reports whether the input at pos begins with lit.
func (d decoder) matches(pos int, lit string) bool {
	if d.src.exhausted(pos + len(lit) - 1) {
		return false
	}
	return mem.S(d.src.slice(pos, pos+len(lit))).EqualString(lit)
}

// skipPadding advances pos past whitespace and block comments.
func (d decoder) skipPadding(pos int) int {
	for {
		ch, ok := d.src.peek(pos)
		if !ok {
			return pos
		}
		if isSpace(ch) {
			pos++
			continue
		}
		if ch == '/' {
			if next, ok := d.src.peek(pos + 1); ok && next == '*' {
				pos = d.skipComment(pos)
				continue
			}
		}
		return pos
	}
}

// skipComment consumes a block comment. Precondition: pos is at "/*".
// Line comments are not recognized.
func (d decoder) skipComment(pos int) int {
	cur := pos + 2
	for {
		ch, ok := d.src.peek(cur)
		if !ok {
			panic(structErr(pos, "unterminated comment"))
		}
		if ch == '*' {
			if next, ok := d.src.peek(cur + 1); ok && next == '/' {
				return cur + 2
			}
		}
		cur++
	}
}

// parseNumber evaluates the scanned run text as a numeric literal: an
// optional sign, digits, an optional fraction, and an optional exponent.
// Anything else in the run is an error; in particular the run is never
// evaluated as a general expression. The grammar is a mild superset of the
// JSON spec: a leading "+" and redundant leading zeroes are accepted.
func parseNumber(pos int, text string) Value {
	i, isInt := 0, true
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	ds := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i == ds {
		panic(structErr(pos, "invalid number %q", text))
	}
	if i < len(text) && text[i] == '.' {
		i++
		isInt = false
		fs := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == fs {
			panic(structErr(pos, "no digits after decimal point in %q", text))
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		isInt = false
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		es := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == es {
			panic(structErr(pos, "missing exponent digits in %q", text))
		}
	}
	if i != len(text) {
		panic(structErr(pos, "invalid number %q", text))
	}

	if isInt {
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(z)
		}
		// Out of range for int64; fall through to a float.
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		panic(structErr(pos, "number %q out of range", text))
	}
	return Float(f)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '+' || ch == '-' || ch == '.' || ch == 'e' || ch == 'E'
}
