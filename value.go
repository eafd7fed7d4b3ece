// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

// A Kind classifies the JSON type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid value
	NullKind            // the null constant
	BoolKind            // true or false
	NumKind             // a number, integer or floating-point
	TextKind            // a string
	ArrayKind           // an array
	ObjectKind          // an object
)

var kindStr = [...]string{
	Invalid:    "invalid",
	NullKind:   "null",
	BoolKind:   "boolean",
	NumKind:    "number",
	TextKind:   "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Value is a JSON value. The concrete types are Bool, Int, Float, String,
// Array, Object, and the singletons Null and EmptyObject.
type Value interface {
	Kind() Kind
}

// Null is the JSON null constant. It is a singleton: a decoded null is
// always identical (==) to Null.
var Null Value = nullValue{}

type nullValue struct{}

// Kind satisfies the Value interface.
func (nullValue) Kind() Kind { return NullKind }

// EmptyObject is the value of an object with no members. It is a distinct
// read-only singleton so that an empty Object and an empty Array remain
// distinguishable after a round trip through the codec. It cannot be
// mutated; to build up an object starting from nothing, use an Object.
var EmptyObject Value = emptyObject{}

type emptyObject struct{}

// Kind satisfies the Value interface.
func (emptyObject) Kind() Kind { return ObjectKind }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// An Int is a JSON number with an integer value.
type Int int64

// Kind satisfies the Value interface.
func (Int) Kind() Kind { return NumKind }

// A Float is a JSON number with a floating-point value.
type Float float64

// Kind satisfies the Value interface.
func (Float) Kind() Kind { return NumKind }

// A String is a JSON string. The text is unescaped UTF-8.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return TextKind }

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// An Object maps string keys to values. Member order is not preserved.
// Note that a decoded "{}" is the EmptyObject singleton, not an Object;
// an Object is only produced for an object with at least one member.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }
