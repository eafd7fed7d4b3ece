// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jscan implements a JSON codec addressed by byte offset.
//
// # Values
//
// A JSON document is represented as a [Value], a closed union over the
// concrete types [Bool], [Int], [Float], [String], [Array], and [Object],
// plus the singletons [Null] and [EmptyObject]. EmptyObject is distinct
// from an Object with no members so that "{}" and "[]" survive a round
// trip through the codec unambiguously.
//
// # Sources and offsets
//
// Input is read through a [Source], constructed either from a string
// (NewSource), from a [Loader] that yields successive chunks of text on
// demand (NewLoaderSource), or from an io.Reader (NewReaderSource). All
// offsets into a Source are 1-based byte positions in the logical stream,
// and a Source never discards buffered input, so an offset observed once
// remains decodable for the life of the Source.
//
// # Decoding
//
// Decode scans a single value beginning at a given offset and returns the
// value along with the offset just past it:
//
//	src := jscan.NewSource(`{"a": [1, 2]}  trailing input is not inspected`)
//	v, next, err := jscan.Decode(src, 1)
//
// Malformed input is reported as a [*StructuralError] carrying the offset
// at which scanning failed. The decoder accepts standard JSON text plus
// /* block comments */ and a few documented leniencies; see the comments
// on Decode for details.
//
// # Traversal
//
// Traverse scans the same grammar without building a tree. The visitor
// callback receives one [Event] per element in document order; container
// events are announced before their contents are scanned, and the visitor
// chooses per element whether to descend ([Continue]), fully decode just
// that element ([Materialize]), or end the walk ([Stop]):
//
//	final, err := jscan.Traverse(src, 1, func(e jscan.Event) (jscan.Action, error) {
//	   if e.Kind == jscan.ObjectKind && e.Value == nil {
//	      return jscan.Materialize, nil
//	   }
//	   return jscan.Continue, nil
//	})
//
// An event's Pos may be retained and handed back to Decode later to
// re-scan just that element.
//
// # Encoding
//
// Encode renders a Value as JSON text, and Format writes an indented
// rendering. ToValue adapts dynamic Go data (as produced by encoding/json
// into an any) to the Value model, including the array-versus-object
// decision for generic maps.
package jscan
