// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"fmt"
	"math"
	"strconv"
)

// maxArrayKey bounds the integer keys a generic map may use and still be
// treated as an array by ToValue. Without a ceiling, a map with keys
// {1, 10000000000} would demand an enormous dense array.
const maxArrayKey = 1000000

// ToValue converts a plain Go value into a Value. It accepts nil, bool,
// string, the built-in integer and float types, []any, map[string]any, and
// map[any]any, as well as any existing Value, which is returned unchanged.
// It panics if the top-level value is of an unsupported type.
//
// Entries of a container that cannot be converted, such as functions or
// channels, or map keys that are neither strings nor integer-valued
// numbers, are silently dropped. This is a deliberate leniency for
// interoperation with dynamic data; use the Array and Object constructors
// directly when the shape of the data is known.
//
// A map[any]any is converted to an Array when its keys are exactly the
// integers 1..n for some n ≤ 1000000 and all its values are convertible.
// Otherwise it becomes an Object whose integer-valued keys are rendered in
// decimal.
func ToValue(v any) Value {
	out, ok := toValue(v)
	if !ok {
		panic(fmt.Sprintf("jscan: cannot convert %T to a Value", v))
	}
	return out
}

func toValue(v any) (Value, bool) {
	switch t := v.(type) {
	case nil:
		return Null, true
	case Value:
		return t, true
	case bool:
		return Bool(t), true
	case string:
		return String(t), true
	case int:
		return Int(t), true
	case int8:
		return Int(t), true
	case int16:
		return Int(t), true
	case int32:
		return Int(t), true
	case int64:
		return Int(t), true
	case uint:
		return uintValue(uint64(t)), true
	case uint8:
		return Int(t), true
	case uint16:
		return Int(t), true
	case uint32:
		return Int(t), true
	case uint64:
		return uintValue(t), true
	case float32:
		return Float(t), true
	case float64:
		return Float(t), true
	case []any:
		arr := make(Array, 0, len(t))
		for _, elt := range t {
			if ev, ok := toValue(elt); ok {
				arr = append(arr, ev)
			}
		}
		return arr, true
	case map[string]any:
		obj := make(Object, len(t))
		for key, val := range t {
			if ev, ok := toValue(val); ok {
				obj[key] = ev
			}
		}
		return obj, true
	case map[any]any:
		return tableValue(t), true
	}
	return nil, false
}

func uintValue(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(u)
	}
	return Int(u)
}

// tableValue converts a generic map, deciding between an array and an
// object. The map is array-like only when its keys are a dense run of
// integers starting at 1 with encodable values; anything else, including a
// sparse set of integer keys, makes it an object.
func tableValue(m map[any]any) Value {
	if len(m) == 0 {
		return EmptyObject
	}
	elems := make(map[int]Value, len(m))
	maxIdx, arrayLike := 0, true
	for key, val := range m {
		idx, ok := intKey(key)
		if !ok || idx < 1 || idx > maxArrayKey {
			arrayLike = false
			break
		}
		ev, ok := toValue(val)
		if !ok || !encodable(ev) {
			arrayLike = false
			break
		}
		elems[idx] = ev
		maxIdx = max(maxIdx, idx)
	}
	if arrayLike && len(elems) == maxIdx {
		arr := make(Array, maxIdx)
		for i, ev := range elems {
			arr[i-1] = ev
		}
		return arr
	}

	obj := make(Object, len(m))
	for key, val := range m {
		name, ok := fieldName(key)
		if !ok {
			continue
		}
		if ev, ok := toValue(val); ok {
			obj[name] = ev
		}
	}
	if len(obj) == 0 {
		return EmptyObject
	}
	return obj
}

// intKey reports the integer value of an integer-valued map key.
func intKey(key any) (int, bool) {
	switch t := key.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return int(t), true
	case float32:
		return intKey(float64(t))
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return int(t), true
		}
	}
	return 0, false
}

// fieldName renders a map key as an object field name. Only strings and
// integer-valued numbers qualify.
func fieldName(key any) (string, bool) {
	if s, ok := key.(string); ok {
		return s, true
	}
	if z, ok := intKey(key); ok {
		return strconv.Itoa(z), true
	}
	return "", false
}
