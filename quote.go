// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"errors"
	"strings"

	"github.com/creachadair/jscan/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents,
// combining surrogate pairs into single code points. Unrecognized escapes
// keep the escaped character and drop the backslash; an incomplete escape
// or an unpaired surrogate is an error.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	return string(dec), err
}
