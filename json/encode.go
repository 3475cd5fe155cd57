// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/golang/jsonvalue/internal/errors"
	"github.com/golang/jsonvalue/internal/pragma"
)

// Marshal returns the canonical serialization of v: no insignificant
// whitespace, members in insertion order.
func Marshal(v Value) ([]byte, error) {
	return MarshalOptions{}.Marshal(v)
}

// Serialize writes the canonical serialization of v to w.
func Serialize(w io.Writer, v Value) error {
	return MarshalOptions{}.Write(w, v)
}

// MarshalOptions is a configurable JSON format serializer.
type MarshalOptions struct {
	pragma.NoUnkeyedLiterals

	// If Indent is a non-empty string, it causes entries for an Array or Object
	// to be preceded by the indent and trailed by a newline. Indent can only be
	// composed of space or tab characters.
	Indent string

	// SortKeys emits object members ordered by key instead of insertion
	// order.
	SortKeys bool
}

// Marshal serializes v using options in MarshalOptions.
func (o MarshalOptions) Marshal(v Value) ([]byte, error) {
	return o.MarshalAppend(nil, v)
}

// MarshalAppend appends the serialization of v to b.
func (o MarshalOptions) MarshalAppend(b []byte, v Value) ([]byte, error) {
	e, err := NewEncoder(o.Indent)
	if err != nil {
		return nil, err
	}
	e.out = b
	if err := o.marshalValue(e, v); err != nil {
		return nil, err
	}
	return e.out, nil
}

// Write serializes v to w. Nothing is written if v cannot be serialized.
func (o MarshalOptions) Write(w io.Writer, v Value) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	var err error
	if bb.B, err = o.MarshalAppend(bb.B[:0], v); err != nil {
		return err
	}
	_, err = w.Write(bb.B)
	return err
}

func (o MarshalOptions) marshalValue(e *Encoder, v Value) error {
	switch v.typ {
	case Null:
		e.WriteNull()
	case Bool:
		e.WriteBool(v.num != 0)
	case Number:
		return e.WriteNumber(v.num)
	case String:
		e.WriteString(v.str)
	case Array:
		e.StartArray()
		for _, elem := range v.arr.elems {
			if err := o.marshalValue(e, elem); err != nil {
				return err
			}
		}
		e.EndArray()
	case Object:
		members := v.obj.members
		if o.SortKeys {
			members = slices.Clone(members)
			slices.SortFunc(members, func(x, y Member) int {
				return strings.Compare(x.Key, y.Key)
			})
		}
		e.StartObject()
		for _, m := range members {
			e.WriteName(m.Key)
			if err := o.marshalValue(e, m.Value); err != nil {
				return err
			}
		}
		e.EndObject()
	default:
		return errors.New("invalid value type %v", v.typ)
	}
	return nil
}

// token is the kind of the last construct written by an Encoder.
type token uint

const (
	_ token = (1 << iota) / 2
	tNull
	tBool
	tNumber
	tString
	tStartObject
	tEndObject
	tName
	tStartArray
	tEndArray
)

// Encoder provides methods to write out JSON constructs and values. The user is
// responsible for producing valid sequences of JSON constructs and values.
type Encoder struct {
	indent   string
	lastType token
	indents  []byte
	out      []byte
}

// NewEncoder returns an Encoder.
//
// If indent is a non-empty string, it causes every entry for an Array or Object
// to be preceded by the indent and trailed by a newline.
func NewEncoder(indent string) (*Encoder, error) {
	e := &Encoder{}
	if len(indent) > 0 {
		if strings.Trim(indent, " \t") != "" {
			return nil, errors.New("indent may only be composed of space or tab characters")
		}
		e.indent = indent
	}
	return e, nil
}

// Bytes returns the content of the written bytes.
func (e *Encoder) Bytes() []byte {
	return e.out
}

// Reset discards the written bytes so the Encoder can be reused.
func (e *Encoder) Reset() {
	e.out = e.out[:0]
	e.indents = e.indents[:0]
	e.lastType = 0
}

// WriteNull writes out the null value.
func (e *Encoder) WriteNull() {
	e.prepareNext(tNull)
	e.out = append(e.out, "null"...)
}

// WriteBool writes out the given boolean value.
func (e *Encoder) WriteBool(b bool) {
	e.prepareNext(tBool)
	if b {
		e.out = append(e.out, "true"...)
	} else {
		e.out = append(e.out, "false"...)
	}
}

// WriteString writes out the given string in JSON string value.
// Quotes, backslashes and control characters are escaped; invalid UTF-8 is
// replaced by U+FFFD.
func (e *Encoder) WriteString(s string) {
	e.prepareNext(tString)
	e.out = appendString(e.out, s)
}

// WriteNumber writes out the given float in JSON number value.
// NaN and infinities have no JSON representation and are rejected.
func (e *Encoder) WriteNumber(n float64) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return errors.New("invalid number value: %v", n)
	}
	e.prepareNext(tNumber)
	e.out = appendFloat(e.out, n)
	return nil
}

// StartObject writes out the '{' symbol.
func (e *Encoder) StartObject() {
	e.prepareNext(tStartObject)
	e.out = append(e.out, '{')
}

// EndObject writes out the '}' symbol.
func (e *Encoder) EndObject() {
	e.prepareNext(tEndObject)
	e.out = append(e.out, '}')
}

// WriteName writes out the given string in JSON string value and the name
// separator ':'.
func (e *Encoder) WriteName(s string) {
	e.prepareNext(tName)
	e.out = appendString(e.out, s)
	e.out = append(e.out, ':')
}

// StartArray writes out the '[' symbol.
func (e *Encoder) StartArray() {
	e.prepareNext(tStartArray)
	e.out = append(e.out, '[')
}

// EndArray writes out the ']' symbol.
func (e *Encoder) EndArray() {
	e.prepareNext(tEndArray)
	e.out = append(e.out, ']')
}

// prepareNext adds possible comma and indentation for the next value based
// on last type and indent option. It also updates lastType to next.
func (e *Encoder) prepareNext(next token) {
	defer func() {
		// Set lastType to next.
		e.lastType = next
	}()

	if len(e.indent) == 0 {
		// Need to add comma on the following condition.
		if e.lastType&(tNull|tBool|tNumber|tString|tEndObject|tEndArray) != 0 &&
			next&(tName|tNull|tBool|tNumber|tString|tStartObject|tStartArray) != 0 {
			e.out = append(e.out, ',')
		}
		return
	}

	switch {
	case e.lastType&(tStartObject|tStartArray) != 0:
		// If next type is NOT closing, add indent and newline.
		if next&(tEndObject|tEndArray) == 0 {
			e.indents = append(e.indents, e.indent...)
			e.out = append(e.out, '\n')
			e.out = append(e.out, e.indents...)
		}

	case e.lastType&(tNull|tBool|tNumber|tString|tEndObject|tEndArray) != 0:
		switch {
		// If next type is either a value or name, add comma and newline.
		case next&(tName|tNull|tBool|tNumber|tString|tStartObject|tStartArray) != 0:
			e.out = append(e.out, ',', '\n')

		// If next type is a closing object or array, adjust indentation.
		case next&(tEndObject|tEndArray) != 0:
			e.indents = e.indents[:len(e.indents)-len(e.indent)]
			e.out = append(e.out, '\n')
		}
		e.out = append(e.out, e.indents...)

	case e.lastType&tName != 0:
		e.out = append(e.out, ' ')
	}
}
