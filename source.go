// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"fmt"
	"io"
)

// DefaultChunkSize is the chunk size used by NewReaderSource. Chunk size
// trades loader call overhead against buffer growth; a few KiB is a
// reasonable middle ground for most inputs.
const DefaultChunkSize = 4096

// A Loader supplies successive chunks of JSON text to a Source. Each call
// returns the next chunk of the input. Returning an empty chunk with a nil
// error, or the error io.EOF, signals the end of the input. Any
// other error aborts the decode or traversal that is driving the loader.
type Loader func() (string, error)

// A Source provides buffered, position-addressed access to a stream of JSON
// text. Offsets into a Source are 1-based: the first byte of the input is
// at offset 1.
//
// A Source backed by a loader appends chunks to an internal buffer as
// lookahead requires. The buffer never shrinks, so any offset surfaced by a
// decode or traversal of the source remains valid for the lifetime of the
// Source. Operations on a Source backed by a plain string do not copy.
//
// A Source is not safe for concurrent use. It may, however, be reused for
// any number of sequential calls to Decode and Traverse.
type Source struct {
	buf  string // input consumed so far
	load Loader // nil for a fixed string
	done bool   // the loader has reported end of input
	err  error  // non-nil when the loader failed
}

// NewSource constructs a Source that reads from the string text.
func NewSource(text string) *Source {
	return &Source{buf: text, done: true}
}

// NewLoaderSource constructs a Source that obtains input by calling load.
func NewLoaderSource(load Loader) *Source {
	return &Source{load: load}
}

// NewReaderSource constructs a Source that obtains input from r in chunks
// of DefaultChunkSize bytes.
func NewReaderSource(r io.Reader) *Source {
	buf := make([]byte, DefaultChunkSize)
	return NewLoaderSource(func() (string, error) {
		for {
			n, err := r.Read(buf)
			if n > 0 {
				return string(buf[:n]), nil
			}
			if err == io.EOF {
				return "", nil
			} else if err != nil {
				return "", err
			}
		}
	})
}

// ensure extends the buffer until at least n bytes are available or the
// input is exhausted. It reports whether n bytes are available.
func (s *Source) ensure(n int) bool {
	for len(s.buf) < n && !s.done {
		chunk, err := s.load()
		if err == io.EOF || (err == nil && chunk == "") {
			s.done = true
		} else if err != nil {
			s.done = true
			s.err = err
			panic(&StructuralError{Pos: len(s.buf) + 1,
				Message: fmt.Sprintf("reading input: %v", err), err: err})
		}
		s.buf += chunk
	}
	return len(s.buf) >= n
}

// peek returns the byte at offset pos, fetching more input as needed.
// It reports false if the input ends before pos.
func (s *Source) peek(pos int) (byte, bool) {
	if pos < 1 || !s.ensure(pos) {
		return 0, false
	}
	return s.buf[pos-1], true
}

// slice returns the text in the half-open offset range [a, b), fetching
// more input as needed. The range must already be known to exist.
func (s *Source) slice(a, b int) string {
	s.ensure(b - 1)
	return s.buf[a-1 : b-1]
}

// exhausted reports whether the input ends before offset pos.
func (s *Source) exhausted(pos int) bool {
	return !s.ensure(pos)
}
