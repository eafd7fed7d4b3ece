// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct{}

func (f Formatter) indent() string { return "  " }

func (f Formatter) maxLineItems() int { return 3 }

// Format renders an indented representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatString(v Value) string {
	var buf strings.Builder
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders an indented representation of v to w using the settings
// from f. Values with a simple enough structure are kept on one line.
func (f Formatter) Format(w io.Writer, v Value) error {
	var buf strings.Builder
	if err := f.formatValue(&buf, v, "", ""); err != nil {
		return err
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// formatValue writes a representation of v to buf indented by indent.
// The first line is prefixed by init instead.
func (f Formatter) formatValue(buf *strings.Builder, v Value, init, indent string) error {
	switch t := v.(type) {
	case Array:
		return f.formatArray(buf, t, init, indent)
	case Object:
		return f.formatObject(buf, t, init, indent)
	default:
		buf.WriteString(init)
		return encodeValue(buf, v)
	}
}

func (f Formatter) formatArray(buf *strings.Builder, a Array, init, indent string) error {
	if f.isBoring(a) {
		buf.WriteString(init)
		buf.WriteByte('[')
		for i, elt := range a {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := encodeValue(buf, elt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}

	buf.WriteString(init + "[\n")
	adent := indent + f.indent()
	for i, elt := range a {
		if i > 0 {
			buf.WriteString(",\n")
		}
		if err := f.formatValue(buf, elt, adent, adent); err != nil {
			return err
		}
	}
	buf.WriteString("\n" + indent + "]")
	return nil
}

func (f Formatter) formatObject(buf *strings.Builder, o Object, init, indent string) error {
	keys := make([]string, 0, len(o))
	for _, key := range slices.Sorted(maps.Keys(o)) {
		if encodable(o[key]) {
			keys = append(keys, key)
		}
	}

	if f.isBoring(o) {
		buf.WriteString(init)
		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			encodeString(buf, key)
			buf.WriteString(": ")
			if err := encodeValue(buf, o[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	}

	buf.WriteString(init + "{\n")
	mdent := indent + f.indent()
	for i, key := range keys {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(mdent)
		encodeString(buf, key)
		buf.WriteString(": ")
		if err := f.formatValue(buf, o[key], "", mdent); err != nil {
			return err
		}
	}
	buf.WriteString("\n" + indent + "}")
	return nil
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v Value) bool {
	switch t := v.(type) {
	case Array:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, elt := range t {
			switch elt.(type) {
			case Array, Object:
				return false
			}
		}
		return true
	case Object:
		if len(t) > 1 {
			return false
		}
		for _, elt := range t {
			if !f.isBoring(elt) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
