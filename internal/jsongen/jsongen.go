// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsongen produces random JSON documents for benchmarks and tests.
package jsongen

import (
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/golang/jsonvalue/json"
)

// WriteRecords writes a tab-indented array of n records to w. Each record is
// an object of the form
//
//	{"string": <16 lowercase letters>, "number": <uint32>, "boolean": <bool>, "null": null}
func WriteRecords(w io.Writer, r *rand.Rand, n int) error {
	e, err := json.NewEncoder("\t")
	if err != nil {
		return err
	}
	e.StartArray()
	for i := 0; i < n; i++ {
		e.StartObject()
		e.WriteName("string")
		e.WriteString(Letters(r, 16))
		e.WriteName("number")
		if err := e.WriteNumber(float64(r.Uint32())); err != nil {
			return err
		}
		e.WriteName("boolean")
		e.WriteBool(r.Uint32()&1 == 1)
		e.WriteName("null")
		e.WriteNull()
		e.EndObject()
	}
	e.EndArray()
	_, err = w.Write(e.Bytes())
	return err
}

// Letters returns n random lowercase ASCII letters.
func Letters(r *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + r.Intn(26)))
	}
	return sb.String()
}

// Value returns a random value nested at most depth containers deep.
// Every generated number is finite, so the result can always be serialized.
func Value(r *rand.Rand, depth int) json.Value {
	kinds := 6
	if depth <= 0 {
		kinds = 4
	}
	switch r.Intn(kinds) {
	case 0:
		return json.Value{}
	case 1:
		return json.ValueOfBool(r.Intn(2) == 1)
	case 2:
		return json.ValueOfNumber(Number(r))
	case 3:
		return json.ValueOfString(String(r, r.Intn(12)))
	case 4:
		vs := make([]json.Value, r.Intn(5))
		for i := range vs {
			vs[i] = Value(r, depth-1)
		}
		return json.ValueOfList(vs...)
	default:
		ms := make([]json.Member, r.Intn(5))
		for i := range ms {
			ms[i] = json.Member{Key: String(r, r.Intn(6)), Value: Value(r, depth-1)}
		}
		return json.ValueOfMap(ms...)
	}
}

// Number returns a random finite float64. Small integers, fractions, zeroes
// of both signs and arbitrary bit patterns are all represented.
func Number(r *rand.Rand) float64 {
	switch r.Intn(5) {
	case 0:
		return float64(r.Intn(2001) - 1000)
	case 1:
		return r.NormFloat64() * math.Pow10(r.Intn(41)-20)
	case 2:
		return math.Copysign(0, float64(r.Intn(2)*2-1))
	case 3:
		return float64(r.Int63()) * float64(r.Intn(2)*2-1)
	default:
		for {
			f := math.Float64frombits(r.Uint64())
			if !math.IsNaN(f) && !math.IsInf(f, 0) {
				return f
			}
		}
	}
}

// alphabet mixes plain ASCII with characters that need escaping and
// multi-byte runes, including one outside the Basic Multilingual Plane.
var alphabet = []rune("az09 _\"\\/\b\f\n\r\t\x00\x1f\x7f\u00e9\u2028\u65e5\U0001f600")

// String returns a random valid UTF-8 string of n runes.
func String(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}
