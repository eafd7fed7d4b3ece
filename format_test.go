// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan_test

import (
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jscan"
	"github.com/google/go-cmp/cmp"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		desc  string
		input jscan.Value
		want  string
	}{
		{"Null", jscan.Null, `null`},
		{"Scalar", jscan.Int(42), `42`},
		{"Sentinel", jscan.EmptyObject, `{}`},
		{"EmptyArray", jscan.Array{}, `[]`},
		{"EmptyObject", jscan.Object{}, `{}`},

		{"BoringArray", jscan.Array{jscan.Int(1), jscan.Int(2)}, `[1, 2]`},
		{"BoringObject", jscan.Object{"a": jscan.Int(1)}, `{"a": 1}`},

		{"LongArray",
			jscan.Array{jscan.Int(1), jscan.Int(2), jscan.Int(3), jscan.Int(4)},
			"[\n  1,\n  2,\n  3,\n  4\n]"},

		{"NestedArray",
			jscan.Array{jscan.Object{"k": jscan.Bool(true)}},
			"[\n  {\"k\": true}\n]"},

		{"WideObject",
			jscan.Object{
				"name": jscan.String("x"),
				"tags": jscan.Array{jscan.Int(1), jscan.Int(2)},
				"meta": jscan.Object{"a": jscan.Int(1), "b": jscan.Int(2)},
			},
			strings.Join([]string{
				`{`,
				`  "meta": {`,
				`    "a": 1,`,
				`    "b": 2`,
				`  },`,
				`  "name": "x",`,
				`  "tags": [1, 2]`,
				`}`,
			}, "\n")},

		// Members without a JSON rendering are quietly dropped.
		{"SkipsUnencodable",
			jscan.Object{"a": jscan.Int(1), "bad": jscan.Float(math.NaN())},
			"{\n  \"a\": 1\n}"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := jscan.FormatString(test.input)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("FormatString: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestFormatWriter(t *testing.T) {
	var buf strings.Builder
	if err := jscan.Format(&buf, jscan.Array{jscan.String("ok")}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got, want := buf.String(), `["ok"]`; got != want {
		t.Errorf("Format: got %#q, want %#q", got, want)
	}
}

// Formatted output must decode back to the same value.
func TestFormatRoundTrip(t *testing.T) {
	const input = `{"a": [1, 2, {"deep": [true, null]}], "b": {"c": "d", "e": []}}`

	v, err := jscan.DecodeString(input)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	v2, err := jscan.DecodeString(jscan.FormatString(v))
	if err != nil {
		t.Fatalf("DecodeString (formatted): %v", err)
	}
	if diff := cmp.Diff(mustEncode(t, v), mustEncode(t, v2)); diff != "" {
		t.Errorf("Round trip: (-orig, +formatted)\n%s", diff)
	}
}
