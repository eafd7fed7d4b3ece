// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON
// string. Quotation marks, backslashes, and forward slashes are escaped,
// control characters use the standard shorthands where they exist, and any
// other byte below 0x20, as well as 0x7f, becomes a \u00xx escape. All
// other bytes pass through unchanged; multibyte UTF-8 sequences are not
// re-encoded.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '"' || b == '\\' || b == '/':
			buf = append(buf, '\\', b)
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			}
		case b == 0x7f:
			buf = append(buf, '\\', 'u', '0', '0', '7', 'f')
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
