// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan_test

import (
	"testing"

	"github.com/creachadair/jscan"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\b\f\r", `"\b\f\r"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"either/or", `"either\/or"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>\x7f", `"<\u001e>\u007f"`},
		{"\U0001D11E ok", "\"\U0001D11E ok\""}, // multibyte passes through
	}
	for _, test := range tests {
		got := jscan.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
		{`"up\/down"`, "up/down", false},      // solidus escape
		{`"\q\z"`, "qz", false},               // unknown escapes lose the backslash
		{`"a \u0026 b"`, "a & b", false}, // short Unicode escape
		{`"\u0041\u00e9"`, "Aé", false}, // basic Unicode escapes
		{`"\u0000"`, "\x00", false}, // escaped NUL
		{`"\"`, ``, true}, // incomplete escape
		{`"\u00"`, ``, true}, // incomplete Unicode escape
		{`"\u00x9"`, ``, true}, // invalid Unicode escape

		// Surrogate pairs.
		{`"\ud834\udd1e"`, "\U0001D11E", false}, // single pair
		{`"x\ud83d\ude00y"`, "x\U0001F600y", false}, // pair in context
		{`"\udd1e"`, "�", false}, // lone low surrogate
		{`"\ud834"`, ``, true}, // unpaired high surrogate
		{`"\ud834\ud835"`, ``, true}, // high surrogate, bad mate
		{`"\ud834 x"`, ``, true}, // high surrogate, no escape
	}
	for _, test := range tests {
		got, err := jscan.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			}
			continue
		}
		if test.fail {
			t.Errorf("Unquote(%#q): got %#q, want error", test.input, got)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}
