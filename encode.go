// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jscan/internal/escape"

	"go4.org/mem"
)

// An EncodingError reports a value that has no JSON representation: a
// non-finite number, or an unsupported value at the top level of a call to
// Encode.
type EncodingError struct {
	Message string
}

// Error satisfies the error interface.
func (e *EncodingError) Error() string { return "encode: " + e.Message }

// Encode renders v as JSON text.
//
// Object members whose value cannot be encoded, such as a NaN or infinite
// number, are silently omitted; elsewhere such a value is an
// [*EncodingError], since JSON has no representation for it. Object
// members are written in sorted key order; the Object model does not
// preserve insertion order.
func Encode(v Value) (string, error) {
	var buf strings.Builder
	if err := encodeValue(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeTo writes the JSON encoding of v to w.
func EncodeTo(w io.Writer, v Value) error {
	text, err := Encode(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func encodeValue(buf *strings.Builder, v Value) error {
	switch t := v.(type) {
	case nullValue:
		buf.WriteString("null")
	case emptyObject:
		buf.WriteString("{}")
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Int:
		buf.WriteString(strconv.FormatInt(int64(t), 10))
	case Float:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &EncodingError{fmt.Sprintf("no JSON representation for %v", f)}
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case String:
		encodeString(buf, string(t))
	case Array:
		buf.WriteByte('[')
		for i, elt := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		first := true
		for _, key := range slices.Sorted(maps.Keys(t)) {
			if !encodable(t[key]) {
				continue // lenient: skip members with no representation
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			encodeString(buf, key)
			buf.WriteByte(':')
			if err := encodeValue(buf, t[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return &EncodingError{fmt.Sprintf("unsupported value %T", v)}
	}
	return nil
}

func encodeString(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	buf.Write(escape.Quote(mem.S(s)))
	buf.WriteByte('"')
}

// encodable reports whether v has a JSON representation as an object
// member. The check is shallow: a non-finite number nested inside an array
// member still fails the encoding of the whole member.
func encodable(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case Float:
		f := float64(t)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}
