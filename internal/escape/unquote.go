// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already removed.
//
// The escapes \" \\ \/ \b \f \n \r \t and \uXXXX are replaced with their
// unescaped equivalents. A \uXXXX escape in the high surrogate range must
// be immediately followed by a low surrogate escape; the pair is combined
// and emitted as a single UTF-8 sequence. A low surrogate escape with no
// preceding high surrogate becomes the Unicode replacement rune. Any other
// escape drops the backslash and keeps the following byte.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, rest, err := parseHex4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			switch {
			case v >= 0xD800 && v < 0xDC00:
				// A high surrogate must begin a \uXXXX\uXXXX pair.
				if src.Len() < 2 || src.At(0) != '\\' || src.At(1) != 'u' {
					return nil, fmt.Errorf("unpaired surrogate %04x", v)
				}
				lo, rest, err := parseHex4(src.SliceFrom(2))
				if err != nil {
					return nil, err
				} else if lo < 0xDC00 || lo >= 0xE000 {
					return nil, fmt.Errorf("unpaired surrogate %04x", v)
				}
				src = rest
				putRune(rune((v-0xD800)*0x400 + (lo - 0xDC00) + 0x10000))
			case v >= 0xDC00 && v < 0xE000:
				putRune(utf8.RuneError) // low surrogate with no mate
			default:
				putRune(rune(v))
			}
		default:
			// Unrecognized escapes drop the backslash and keep the byte.
			// This also covers the explicit \" \\ \/ escapes.
			dec = append(dec, b)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// parseHex4 decodes exactly four hex digits from the front of data,
// returning the value and the unconsumed remainder of data.
func parseHex4(data mem.RO) (int64, mem.RO, error) {
	if data.Len() < 4 {
		return 0, data, errors.New("incomplete Unicode escape")
	}
	var v int64
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, data, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, data.SliceFrom(4), nil
}
