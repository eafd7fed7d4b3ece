// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jscan"
	"github.com/google/go-cmp/cmp"
)

// chunkLoader returns a Loader that yields text in chunks of at most size
// bytes, then reports end of input.
func chunkLoader(text string, size int) jscan.Loader {
	return func() (string, error) {
		if text == "" {
			return "", nil
		}
		n := min(size, len(text))
		chunk := text[:n]
		text = text[n:]
		return chunk, nil
	}
}

func TestStreamingEquivalence(t *testing.T) {
	const input = ` /* header */ {"name": "Gödel, Escher, Bach",
	   "clef": "𝄞", "tags": [1, 2.5, true, null],
	   "empty": {}, "none": []}`

	want, err := jscan.DecodeString(input)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	wantText := mustEncode(t, want)

	// Decoding must not depend on how the input is chunked, including
	// chunks that split multibyte runes and escape sequences.
	for size := 1; size <= len(input); size++ {
		src := jscan.NewLoaderSource(chunkLoader(input, size))
		got, next, err := jscan.Decode(src, 1)
		if err != nil {
			t.Fatalf("Decode (chunk size %d): %v", size, err)
		}
		if diff := cmp.Diff(wantText, mustEncode(t, got)); diff != "" {
			t.Errorf("Chunk size %d: (-want, +got)\n%s", size, diff)
		}
		if want := len(input) + 1; next != want {
			t.Errorf("Chunk size %d: next offset got %d, want %d", size, next, want)
		}
	}
}

func TestReaderSource(t *testing.T) {
	const input = `{"a": [1, 2, 3], "b": "see"}`

	// iotest.OneByteReader defeats any internal chunking assumptions.
	src := jscan.NewReaderSource(iotest.OneByteReader(strings.NewReader(input)))
	v, _, err := jscan.Decode(src, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := mustEncode(t, v), `{"a":[1,2,3],"b":"see"}`; got != want {
		t.Errorf("Decode: got %#q, want %#q", got, want)
	}
}

func TestLoaderFailure(t *testing.T) {
	errLoad := errors.New("synthetic load failure")

	calls := 0
	src := jscan.NewLoaderSource(func() (string, error) {
		calls++
		if calls == 1 {
			return `{"partial": `, nil
		}
		return "", errLoad
	})
	v, _, err := jscan.Decode(src, 1)
	if err == nil {
		t.Fatalf("Decode: got %+v, want error", v)
	}
	if !errors.Is(err, errLoad) {
		t.Errorf("Decode: got %v, want it to wrap %v", err, errLoad)
	}
}

func TestLoaderEOFMarkers(t *testing.T) {
	// Both the empty-chunk and io.EOF conventions end the input cleanly.
	for _, test := range []struct {
		name string
		load jscan.Loader
	}{
		{"EmptyChunk", chunkLoader(`[1]`, 1)},
		{"ReaderEOF", func() func() (string, error) {
			r := strings.NewReader(`[1]`)
			buf := make([]byte, 1)
			return func() (string, error) {
				n, err := r.Read(buf)
				return string(buf[:n]), err
			}
		}()},
	} {
		t.Run(test.name, func(t *testing.T) {
			v, next, err := jscan.Decode(jscan.NewLoaderSource(test.load), 1)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got := mustEncode(t, v); got != `[1]` {
				t.Errorf("Decode: got %#q, want %#q", got, `[1]`)
			}
			if next != 4 {
				t.Errorf("Next offset: got %d, want 4", next)
			}
		})
	}
}

func TestUnterminatedChunkedInput(t *testing.T) {
	src := jscan.NewLoaderSource(chunkLoader(`{"open": [1, 2`, 3))
	if v, _, err := jscan.Decode(src, 1); err == nil {
		t.Errorf("Decode: got %+v, want error", v)
	}
}
