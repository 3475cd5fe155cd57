// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json implements an in-memory JSON value together with a parser and
// a serializer for the JSON text format.
//
// This follows RFC 7159, with some notable implementation specifics:
//   - all numbers are represented as float64; numbers that are out of range
//     result in a decoding error
//   - duplicate keys in objects are not rejected; the last value wins
//   - invalid UTF-8 and unpaired surrogate escapes are rejected
//   - trailing data after a value is left to the caller when using Parse
package json

import (
	"fmt"
	"math"
)

// Type represents a type expressible in the JSON format.
type Type uint8

const (
	// Null is the null literal (i.e., "null"). It is the type of the zero Value.
	Null Type = iota
	// Bool is a boolean (i.e., "true" or "false").
	Bool
	// Number is a floating-point number (e.g., "1.234" or "1e100").
	Number
	// String is an escaped string (e.g., `"the quick brown fox"`).
	String
	// Array is an ordered list of values (e.g., `[0, "one", true]`).
	Array
	// Object is an ordered map of values (e.g., `{"key": null}`).
	Object
)

func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "<invalid>"
	}
}

// Value contains a value of a given Type. The zero Value is Null.
//
// A Value is a small struct; copying it copies scalars but shares the
// underlying List or Map. Use Clone for an independent deep copy.
type Value struct {
	typ Type
	num float64 // only for Bool or Number
	str string  // only for String
	arr *List   // only for Array
	obj *Map    // only for Object
}

// ValueOf returns a Value for a given Go value:
//	nil                    =>  Null
//	bool                   =>  Bool
//	int, int32, int64      =>  Number
//	uint, uint32, uint64   =>  Number
//	float32, float64       =>  Number
//	string, []byte         =>  String
//	[]Value, *List         =>  Array
//	[]Member, *Map         =>  Object
//	map[string]Value       =>  Object (keys in sorted order)
//	Value                  =>  itself
//
// ValueOf panics if the Go type is not one of the above.
func ValueOf(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return Value{}
	case bool:
		return ValueOfBool(v)
	case int:
		return ValueOfNumber(float64(v))
	case int32:
		return ValueOfNumber(float64(v))
	case int64:
		return ValueOfNumber(float64(v)) // possible loss of precision
	case uint:
		return ValueOfNumber(float64(v))
	case uint32:
		return ValueOfNumber(float64(v))
	case uint64:
		return ValueOfNumber(float64(v)) // possible loss of precision
	case float32:
		return ValueOfNumber(float64(v))
	case float64:
		return ValueOfNumber(v)
	case string:
		return ValueOfString(v)
	case []byte:
		return ValueOfString(string(v))
	case []Value:
		return ValueOfList(v...)
	case *List:
		if v == nil {
			v = NewList()
		}
		return Value{typ: Array, arr: v}
	case []Member:
		return ValueOfMap(v...)
	case *Map:
		if v == nil {
			v = NewMap()
		}
		return Value{typ: Object, obj: v}
	case map[string]Value:
		return Value{typ: Object, obj: mapFromGo(v)}
	case Value:
		return v
	default:
		panic(fmt.Sprintf("invalid type %T", v))
	}
}

// ValueOfBool returns a Bool value.
func ValueOfBool(b bool) Value {
	if b {
		return Value{typ: Bool, num: 1}
	}
	return Value{typ: Bool, num: 0}
}

// ValueOfNumber returns a Number value. NaN and infinities are accepted but
// cannot be serialized.
func ValueOfNumber(n float64) Value {
	return Value{typ: Number, num: n}
}

// ValueOfString returns a String value.
func ValueOfString(s string) Value {
	return Value{typ: String, str: s}
}

// ValueOfList returns an Array value holding vs in order.
func ValueOfList(vs ...Value) Value {
	return Value{typ: Array, arr: NewList(vs...)}
}

// ValueOfMap returns an Object value holding ms.
// If a key repeats, the later value replaces the earlier one.
func ValueOfMap(ms ...Member) Value {
	return Value{typ: Object, obj: NewMap(ms...)}
}

// Type is the type of the value.
func (v Value) Type() Type {
	return v.typ
}

func (v Value) IsNull() bool   { return v.typ == Null }
func (v Value) IsBool() bool   { return v.typ == Bool }
func (v Value) IsNumber() bool { return v.typ == Number }
func (v Value) IsString() bool { return v.typ == String }
func (v Value) IsArray() bool  { return v.typ == Array }
func (v Value) IsObject() bool { return v.typ == Object }

// Bool returns v as a bool. It reports a *TypeError if v is not a Bool.
func (v Value) Bool() (bool, error) {
	if v.typ != Bool {
		return false, &TypeError{Want: Bool, Got: v.typ}
	}
	return v.num != 0, nil
}

// Number returns v as a float64. It reports a *TypeError if v is not a Number.
func (v Value) Number() (float64, error) {
	if v.typ != Number {
		return 0, &TypeError{Want: Number, Got: v.typ}
	}
	return v.num, nil
}

// Text returns the decoded content of a String value.
// It reports a *TypeError if v is not a String.
func (v Value) Text() (string, error) {
	if v.typ != String {
		return "", &TypeError{Want: String, Got: v.typ}
	}
	return v.str, nil
}

// List returns the elements of an Array value.
// Mutations on the returned List are visible through v.
func (v Value) List() (*List, error) {
	if v.typ != Array {
		return nil, &TypeError{Want: Array, Got: v.typ}
	}
	return v.arr, nil
}

// Map returns the members of an Object value.
// Mutations on the returned Map are visible through v.
func (v Value) Map() (*Map, error) {
	if v.typ != Object {
		return nil, &TypeError{Want: Object, Got: v.typ}
	}
	return v.obj, nil
}

// Get returns the member of an Object value with the given key.
func (v Value) Get(key string) (*Value, error) {
	m, err := v.Map()
	if err != nil {
		return nil, err
	}
	return m.Get(key)
}

// Index returns the i'th element of an Array value.
func (v Value) Index(i int) (*Value, error) {
	l, err := v.List()
	if err != nil {
		return nil, err
	}
	return l.Index(i)
}

// Nullify resets v to Null, releasing any payload it held.
func (v *Value) Nullify() {
	*v = Value{}
}

// SetBool replaces v with a Bool value.
func (v *Value) SetBool(b bool) {
	*v = ValueOfBool(b)
}

// SetNumber replaces v with a Number value.
func (v *Value) SetNumber(n float64) {
	*v = ValueOfNumber(n)
}

// SetString replaces v with a String value.
func (v *Value) SetString(s string) {
	*v = ValueOfString(s)
}

// SetList replaces v with an Array value backed by l.
func (v *Value) SetList(l *List) {
	*v = ValueOf(l)
}

// SetMap replaces v with an Object value backed by m.
func (v *Value) SetMap(m *Map) {
	*v = ValueOf(m)
}

// Clone returns a deep copy of v that shares no containers with it.
func (v Value) Clone() Value {
	switch v.typ {
	case Array:
		l := &List{elems: make([]Value, len(v.arr.elems))}
		for i, e := range v.arr.elems {
			l.elems[i] = e.Clone()
		}
		return Value{typ: Array, arr: l}
	case Object:
		m := &Map{members: make([]Member, len(v.obj.members))}
		for i, e := range v.obj.members {
			m.members[i] = Member{Key: e.Key, Value: e.Value.Clone()}
		}
		m.reindex(0)
		return Value{typ: Object, obj: m}
	default:
		return v
	}
}

// String returns the canonical serialization of v.
// It returns "<invalid>" if v holds a number that JSON cannot represent.
func (v Value) String() string {
	b, err := Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

// Equal reports whether x and y are deeply equal.
// Objects are compared by membership, regardless of member order.
// NaN numbers are never equal.
func Equal(x, y Value) bool {
	if x.typ != y.typ {
		return false
	}
	switch x.typ {
	case Null:
		return true
	case Bool:
		return x.num == y.num
	case Number:
		return x.num == y.num && math.Signbit(x.num) == math.Signbit(y.num)
	case String:
		return x.str == y.str
	case Array:
		if x.arr.Len() != y.arr.Len() {
			return false
		}
		for i := range x.arr.elems {
			if !Equal(x.arr.elems[i], y.arr.elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if x.obj.Len() != y.obj.Len() {
			return false
		}
		for _, m := range x.obj.members {
			i, ok := y.obj.index[m.Key]
			if !ok || !Equal(m.Value, y.obj.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
