// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"fmt"
	"strings"
)

// A Step is one component of a Path: either an object key or a 1-based
// array index.
type Step struct {
	Key   string // object key, used when Index == 0
	Index int    // array index, 1-based; 0 means this is a key step
}

// A Path is the route from the root of a document to the element being
// visited, one Step per level of nesting. The root has an empty Path.
type Path []Step

// String renders p in a JSONPath-like form, e.g. $.name[2].value.
func (p Path) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range p {
		if s.Index > 0 {
			fmt.Fprintf(&buf, "[%d]", s.Index)
		} else {
			fmt.Fprintf(&buf, ".%s", s.Key)
		}
	}
	return buf.String()
}

// An Action is the result of a VisitFunc, directing the traversal.
type Action int

const (
	// Continue the traversal. For a container announcement, descend into
	// the children of the container.
	Continue Action = iota

	// Materialize the element: fully decode the announced container and
	// invoke the visitor again for the same element with the decoded value.
	// Materialize is equivalent to Continue for any event that already
	// carries a value.
	Materialize

	// Stop the traversal without error.
	Stop
)

// An Event describes one element encountered during a traversal.
//
// The Path field is only valid for the duration of the visitor call that
// receives the event; a visitor that needs to retain it must copy it.
type Event struct {
	Path  Path
	Kind  Kind
	Value Value // decoded value, or nil for a container announcement
	Pos   int   // offset of the first byte of the element
	End   int   // offset of the last byte of the element, or 0 if unknown
}

// A VisitFunc receives traversal events. Returning an error aborts the
// traversal and surfaces that error from Traverse.
type VisitFunc func(e Event) (Action, error)

// Traverse scans one JSON value from src beginning at offset pos, invoking
// visit for each element instead of building a tree:
//
// Scalars produce a single event carrying the decoded value, with both Pos
// and End known.
//
// Containers are first announced with a nil Value and End == 0, before
// their contents have been scanned. If the visitor returns Materialize,
// the engine decodes that element in full and re-invokes the visitor for
// the same path with the value and the now-known End, then skips past the
// element. Otherwise the engine descends into the container's children,
// extending the path by the member key or 1-based element index, and never
// allocates the container itself. With no materialization requested, a
// traversal uses auxiliary memory proportional to the nesting depth alone.
//
// Traverse returns the offset just past the value it scanned. If the
// visitor returned Stop, it instead returns the offset of the element
// whose event stopped the traversal. Any Pos surfaced in an event is a
// valid start offset for Decode against the same source.
func Traverse(src *Source, pos int, visit VisitFunc) (next int, err error) {
	defer func() {
		if p := recover(); p != nil {
			switch v := p.(type) {
			case *StructuralError:
				next, err = 0, v
			case stopTraversal:
				next, err = v.pos, nil
			case visitorError:
				next, err = 0, v.err
			default:
				panic(p)
			}
		}
	}()
	if pos < 1 {
		return 0, fmt.Errorf("invalid start offset %d", pos)
	}
	t := &traverser{d: decoder{src}, visit: visit}
	return t.value(pos), nil
}

type stopTraversal struct{ pos int }

type visitorError struct{ err error }

// A traverser drives a VisitFunc through the grammar. It shares the
// decoder's lexical layer, and like the decoder it propagates failures by
// panic, unwound in Traverse.
type traverser struct {
	d     decoder
	visit VisitFunc
	path  Path
}

// emit delivers e to the visitor. It reports whether the visitor asked to
// materialize, which the caller honors only for container announcements.
func (t *traverser) emit(e Event) bool {
	act, err := t.visit(e)
	if err != nil {
		panic(visitorError{err})
	}
	switch act {
	case Stop:
		panic(stopTraversal{e.Pos})
	case Materialize:
		return e.Value == nil
	}
	return false
}

// value traverses a single value of any type at or after pos.
func (t *traverser) value(pos int) int {
	pos = t.d.skipPadding(pos)
	ch, ok := t.d.src.peek(pos)
	if !ok {
		panic(structErr(pos, "unexpected end of input"))
	}
	switch ch {
	case '{':
		return t.container(pos, ObjectKind)
	case '[':
		return t.container(pos, ArrayKind)
	}
	v, next := t.d.value(pos)
	t.emit(Event{Path: t.path, Kind: v.Kind(), Value: v, Pos: pos, End: next - 1})
	return next
}

// container announces the container at pos and either materializes it or
// descends into its children.
func (t *traverser) container(pos int, kind Kind) int {
	if t.emit(Event{Path: t.path, Kind: kind, Pos: pos}) {
		v, next := t.d.value(pos)
		t.emit(Event{Path: t.path, Kind: kind, Value: v, Pos: pos, End: next - 1})
		return next
	}
	if kind == ObjectKind {
		return t.members(pos)
	}
	return t.elements(pos)
}

// members traverses the members of an object, following the same grammar
// as decoder.object. Precondition: pos is at "{".
func (t *traverser) members(pos int) int {
	cur := pos + 1
	for {
		cur = t.d.skipPadding(cur)
		ch, ok := t.d.src.peek(cur)
		if !ok {
			panic(structErr(cur, "unterminated object"))
		}
		if ch == '}' {
			return cur + 1
		}
		if ch == ',' {
			cur++
		}
		key, next := t.d.value(cur)
		text, ok := key.(String)
		if !ok {
			panic(structErr(cur, "object key must be a string, not %v", key.Kind()))
		}
		cur = t.d.skipPadding(next)
		if ch, ok := t.d.src.peek(cur); !ok || ch != ':' {
			panic(structErr(cur, `missing ":" in object member`))
		}
		t.path = append(t.path, Step{Key: string(text)})
		cur = t.value(cur + 1)
		t.path = t.path[:len(t.path)-1]
	}
}

// elements traverses the elements of an array. Precondition: pos is at "[".
func (t *traverser) elements(pos int) int {
	cur, idx := pos+1, 0
	for {
		cur = t.d.skipPadding(cur)
		ch, ok := t.d.src.peek(cur)
		if !ok {
			panic(structErr(cur, "unterminated array"))
		}
		if ch == ']' {
			return cur + 1
		}
		if ch == ',' {
			cur++
		}
		idx++
		t.path = append(t.path, Step{Index: idx})
		cur = t.value(cur)
		t.path = t.path[:len(t.path)-1]
	}
}
